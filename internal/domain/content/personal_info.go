package content

import (
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// DefaultPortfolioName is shown when no personal info has been entered yet
const DefaultPortfolioName = "My Portfolio"

// PersonalInfo is the site owner's profile. Exactly one record is active at a time.
type PersonalInfo struct {
	Base
	PortfolioName       string    `json:"portfolio_name" validate:"max=100"`
	FullName            string    `json:"full_name" validate:"required,max=100"`
	Email               string    `json:"email" validate:"omitempty,email"`
	Phone               string    `json:"phone" validate:"max=30"`
	Bio                 string    `json:"bio"`
	Location            string    `json:"location" validate:"max=100"`
	ProfileImage        media.Ref `json:"profile_image"`
	Resume              media.Ref `json:"resume"`
	AboutIntro          string    `json:"about_intro"`
	YearsExperience     int       `json:"years_experience" validate:"gte=0,lte=80"`
	CurrentRole         string    `json:"current_role" validate:"max=100"`
	ProfessionalSummary string    `json:"professional_summary"`
	TechnicalSkills     string    `json:"technical_skills"`
	SoftSkills          string    `json:"soft_skills"`
	Interests           string    `json:"interests"`
	GithubURL           string    `json:"github_url" validate:"omitempty,url"`
	LinkedinURL         string    `json:"linkedin_url" validate:"omitempty,url"`
	TwitterURL          string    `json:"twitter_url" validate:"omitempty,url"`
	WebsiteURL          string    `json:"website_url" validate:"omitempty,url"`
	InstagramURL        string    `json:"instagram_url" validate:"omitempty,url"`
	MetaDescription     string    `json:"meta_description" validate:"max=160"`
	MetaKeywords        string    `json:"meta_keywords" validate:"max=255"`
	IsActive            bool      `json:"is_active"`
}

// Validate checks the profile fields
func (p *PersonalInfo) Validate() error {
	return validators.Struct(p)
}

// DisplayName returns the portfolio name, falling back to the owner's name and then a default
func (p *PersonalInfo) DisplayName() string {
	if p == nil {
		return DefaultPortfolioName
	}
	if p.PortfolioName != "" {
		return p.PortfolioName
	}
	if p.FullName != "" {
		return p.FullName
	}
	return DefaultPortfolioName
}

// TechnicalSkillList splits the comma separated technical skills
func (p *PersonalInfo) TechnicalSkillList() []string {
	return splitList(p.TechnicalSkills, ",")
}

// SoftSkillList splits the comma separated soft skills
func (p *PersonalInfo) SoftSkillList() []string {
	return splitList(p.SoftSkills, ",")
}

// InterestList splits the comma separated interests
func (p *PersonalInfo) InterestList() []string {
	return splitList(p.Interests, ",")
}

// MediaRefs implements media.Holder
func (p *PersonalInfo) MediaRefs() []*media.Ref {
	return []*media.Ref{&p.ProfileImage, &p.Resume}
}
