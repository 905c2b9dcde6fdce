package content

import (
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// SkillCategory groups skills on the about page
type SkillCategory string

// Skill categories
const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillDatabase SkillCategory = "database"
	SkillTools    SkillCategory = "tools"
	SkillDevOps   SkillCategory = "devops"
	SkillOther    SkillCategory = "other"
)

// SkillCategories lists categories in display order
var SkillCategories = []SkillCategory{SkillFrontend, SkillBackend, SkillDatabase, SkillDevOps, SkillTools, SkillOther}

// Skill is a technology or competence with a 1-5 proficiency
type Skill struct {
	Base
	Name        string        `json:"name" validate:"required,max=100"`
	Category    SkillCategory `json:"category" validate:"required,oneof=frontend backend database tools devops other"`
	Proficiency int           `json:"proficiency" validate:"gte=1,lte=5"`
	Description string        `json:"description"`
	IconClass   string        `json:"icon_class" validate:"max=100"`
	Order       int           `json:"order" validate:"gte=0"`
	IsFeatured  bool          `json:"is_featured"`
}

// Normalize fills defaults
func (s *Skill) Normalize() {
	if s.Category == "" {
		s.Category = SkillOther
	}
	if s.Proficiency == 0 {
		s.Proficiency = 3
	}
}

// Validate checks the skill fields
func (s *Skill) Validate() error {
	return validators.Struct(s)
}

// ProficiencyPercent maps the 1-5 scale onto a percentage for progress bars
func (s *Skill) ProficiencyPercent() int {
	return s.Proficiency * 20
}

// SkillGroup is one category of skills
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []*Skill      `json:"skills"`
}

// GroupSkills groups skills by category in display order, dropping empty groups
func GroupSkills(skills []*Skill) []SkillGroup {
	byCategory := map[SkillCategory][]*Skill{}
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	var groups []SkillGroup
	for _, c := range SkillCategories {
		if len(byCategory[c]) > 0 {
			groups = append(groups, SkillGroup{Category: c, Skills: byCategory[c]})
		}
	}
	return groups
}

// Education is a school or university entry
type Education struct {
	Base
	SchoolName   string     `json:"school_name" validate:"required,max=200"`
	Degree       string     `json:"degree" validate:"required,max=200"`
	FieldOfStudy string     `json:"field_of_study" validate:"max=200"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Grade        string     `json:"grade" validate:"max=50"`
	Description  string     `json:"description"`
	Location     string     `json:"location" validate:"max=100"`
	IsCurrent    bool       `json:"is_current"`
	Order        int        `json:"order" validate:"gte=0"`
}

// Normalize clears the end date of ongoing studies
func (e *Education) Normalize() {
	if e.IsCurrent {
		e.EndDate = nil
	}
}

// Validate checks the fields and the date range
func (e *Education) Validate() error {
	if err := validators.Struct(e); err != nil {
		return err
	}
	return checkDateRange(e.StartDate, e.EndDate)
}

// Certification is a professional certificate
type Certification struct {
	Base
	Name                string     `json:"name" validate:"required,max=200"`
	IssuingOrganization string     `json:"issuing_organization" validate:"required,max=200"`
	IssueDate           time.Time  `json:"issue_date" validate:"required"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	CredentialID        string     `json:"credential_id" validate:"max=100"`
	CredentialURL       string     `json:"credential_url" validate:"omitempty,url"`
	Description         string     `json:"description"`
	CertificateImage    media.Ref  `json:"certificate_image"`
	IsFeatured          bool       `json:"is_featured"`
	Order               int        `json:"order" validate:"gte=0"`
}

// Validate checks the fields and that expiry follows issue
func (c *Certification) Validate() error {
	if err := validators.Struct(c); err != nil {
		return err
	}
	return checkDateRange(c.IssueDate, c.ExpiryDate)
}

// IsExpired reports whether the certificate expired before now
func (c *Certification) IsExpired(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}

// MediaRefs implements media.Holder
func (c *Certification) MediaRefs() []*media.Ref {
	return []*media.Ref{&c.CertificateImage}
}

// Award is an honour or prize
type Award struct {
	Base
	Title               string    `json:"title" validate:"required,max=200"`
	IssuingOrganization string    `json:"issuing_organization" validate:"required,max=200"`
	DateReceived        time.Time `json:"date_received" validate:"required"`
	Description         string    `json:"description"`
	Category            string    `json:"category" validate:"required,oneof=academic professional competition recognition other"`
	AwardImage          media.Ref `json:"award_image"`
	AwardURL            string    `json:"award_url" validate:"omitempty,url"`
	IsFeatured          bool      `json:"is_featured"`
	Order               int       `json:"order" validate:"gte=0"`
}

// Normalize fills defaults
func (a *Award) Normalize() {
	if a.Category == "" {
		a.Category = "other"
	}
}

// Validate checks the award fields
func (a *Award) Validate() error {
	return validators.Struct(a)
}

// MediaRefs implements media.Holder
func (a *Award) MediaRefs() []*media.Ref {
	return []*media.Ref{&a.AwardImage}
}

// CareerTimeline is one position in the work history
type CareerTimeline struct {
	Base
	JobTitle     string     `json:"job_title" validate:"required,max=200"`
	Company      string     `json:"company" validate:"required,max=200"`
	CompanyURL   string     `json:"company_url" validate:"omitempty,url"`
	Location     string     `json:"location" validate:"max=100"`
	JobType      string     `json:"job_type" validate:"required,oneof=full_time part_time contract freelance internship"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsCurrent    bool       `json:"is_current"`
	Description  string     `json:"description" validate:"required"`
	Technologies string     `json:"technologies"`
	Achievements string     `json:"achievements"`
	Order        int        `json:"order" validate:"gte=0"`
}

// Normalize clears the end date of the current position and defaults the job type
func (c *CareerTimeline) Normalize() {
	if c.IsCurrent {
		c.EndDate = nil
	}
	if c.JobType == "" {
		c.JobType = "full_time"
	}
}

// Validate checks the fields and the date range
func (c *CareerTimeline) Validate() error {
	if err := validators.Struct(c); err != nil {
		return err
	}
	return checkDateRange(c.StartDate, c.EndDate)
}

// TechnologyList splits the comma separated technologies
func (c *CareerTimeline) TechnologyList() []string {
	return splitList(c.Technologies, ",")
}

// AchievementList splits achievements, one per line
func (c *CareerTimeline) AchievementList() []string {
	return splitList(c.Achievements, "\n")
}

// Duration returns the whole years and remaining months spent in the position
func (c *CareerTimeline) Duration(now time.Time) (int, int) {
	end := now
	if c.EndDate != nil && !c.IsCurrent {
		end = *c.EndDate
	}
	months := (end.Year()-c.StartDate.Year())*12 + int(end.Month()) - int(c.StartDate.Month())
	if end.Day() < c.StartDate.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months / 12, months % 12
}

func checkDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return validators.Errorf("end date %s is before start date %s", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}
