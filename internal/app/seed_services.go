package app

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"gopkg.in/yaml.v3"
)

//go:embed seed_data.yaml
var defaultSeedData []byte

// SeedData is the YAML document the seed command loads
type SeedData struct {
	PersonalInfo *seedPersonalInfo `yaml:"personal_info,omitempty"`
	Skills       []seedSkill       `yaml:"skills"`
	Education    []seedEducation   `yaml:"education"`
	Career       []seedCareer      `yaml:"career"`
	Tags         []string          `yaml:"tags"`
	Projects     []seedProject     `yaml:"projects"`
	Testimonials []seedTestimonial `yaml:"testimonials"`
	FooterLinks  []seedFooterLink  `yaml:"footer_links"`
	BlogPosts    []seedBlogPost    `yaml:"blog_posts"`
}

type seedPersonalInfo struct {
	FullName        string `yaml:"full_name"`
	PortfolioName   string `yaml:"portfolio_name"`
	CurrentRole     string `yaml:"current_role"`
	Bio             string `yaml:"bio"`
	Email           string `yaml:"email"`
	Phone           string `yaml:"phone"`
	Location        string `yaml:"location"`
	YearsExperience int    `yaml:"years_experience"`
	GithubURL       string `yaml:"github_url"`
	LinkedinURL     string `yaml:"linkedin_url"`
	TwitterURL      string `yaml:"twitter_url"`
	WebsiteURL      string `yaml:"website_url"`
}

type seedSkill struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Proficiency int    `yaml:"proficiency"`
	Order       int    `yaml:"order"`
	Featured    bool   `yaml:"featured"`
}

type seedEducation struct {
	SchoolName   string     `yaml:"school_name"`
	Degree       string     `yaml:"degree"`
	FieldOfStudy string     `yaml:"field_of_study"`
	Location     string     `yaml:"location"`
	StartDate    time.Time  `yaml:"start_date"`
	EndDate      *time.Time `yaml:"end_date"`
	Grade        string     `yaml:"grade"`
	Description  string     `yaml:"description"`
}

type seedCareer struct {
	JobTitle     string     `yaml:"job_title"`
	Company      string     `yaml:"company"`
	Location     string     `yaml:"location"`
	JobType      string     `yaml:"job_type"`
	StartDate    time.Time  `yaml:"start_date"`
	EndDate      *time.Time `yaml:"end_date"`
	IsCurrent    bool       `yaml:"is_current"`
	Description  string     `yaml:"description"`
	Technologies string     `yaml:"technologies"`
	Achievements string     `yaml:"achievements"`
}

type seedProject struct {
	Title               string   `yaml:"title"`
	Slug                string   `yaml:"slug"`
	Description         string   `yaml:"description"`
	DetailedDescription string   `yaml:"detailed_description"`
	TechStack           string   `yaml:"tech_stack"`
	RepoURL             string   `yaml:"repo_url"`
	LiveURL             string   `yaml:"live_url"`
	Status              string   `yaml:"status"`
	Featured            bool     `yaml:"featured"`
	Order               int      `yaml:"order"`
	Tags                []string `yaml:"tags"`
	Technologies        []string `yaml:"technologies"`
}

type seedTestimonial struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Company  string `yaml:"company"`
	Comment  string `yaml:"comment"`
	Rating   int    `yaml:"rating"`
	Featured bool   `yaml:"featured"`
}

type seedFooterLink struct {
	Title     string `yaml:"title"`
	URL       string `yaml:"url"`
	Category  string `yaml:"category"`
	IconClass string `yaml:"icon_class"`
	Order     int    `yaml:"order"`
	External  bool   `yaml:"external"`
}

type seedBlogPost struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Excerpt   string `yaml:"excerpt"`
	Body      string `yaml:"body"`
	Tags      string `yaml:"tags"`
	Published bool   `yaml:"published"`
	Featured  bool   `yaml:"featured"`
}

// ParseSeedData decodes a seed document
func ParseSeedData(data []byte) (*SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &seed, nil
}

// DefaultSeedData returns the embedded seed document
func DefaultSeedData() (*SeedData, error) {
	return ParseSeedData(defaultSeedData)
}

// LoadSeedFile reads a seed document from path, falling back to the embedded one when path is empty
func LoadSeedFile(path string) (*SeedData, error) {
	if path == "" {
		return DefaultSeedData()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeedData(data)
}

// SeedCount is the outcome for one entity type
type SeedCount struct {
	Entity   string `json:"entity"`
	Created  int    `json:"created"`
	Existing int    `json:"existing"`
}

// SeedReport lists counts in seeding order
type SeedReport struct {
	Counts []SeedCount `json:"counts"`
}

// Created returns the number of records created across all entities
func (r *SeedReport) Created() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Created
	}
	return total
}

func (r *SeedReport) record(entity string, created bool) {
	for i := range r.Counts {
		if r.Counts[i].Entity == entity {
			if created {
				r.Counts[i].Created++
			} else {
				r.Counts[i].Existing++
			}
			return
		}
	}
	c := SeedCount{Entity: entity}
	if created {
		c.Created = 1
	} else {
		c.Existing = 1
	}
	r.Counts = append(r.Counts, c)
}

// SeedRepositories are the stores the seed command writes to
type SeedRepositories struct {
	PersonalInfo content.PersonalInfoRepository
	Skills       content.Repository[*content.Skill]
	Education    content.Repository[*content.Education]
	Career       content.Repository[*content.CareerTimeline]
	Tags         content.Repository[*content.Tag]
	Projects     content.ProjectRepository
	Testimonials content.Repository[*content.Testimonial]
	FooterLinks  content.Repository[*content.FooterLink]
	Posts        content.BlogPostRepository
}

// SeedService loads content idempotently. Existing records are matched on
// their natural key and never modified.
type SeedService struct {
	repos  SeedRepositories
	now    func() time.Time
	logger logger.Logger
}

// NewSeedService creates a new SeedService
func NewSeedService(repos SeedRepositories, logger logger.Logger) (*SeedService, error) {
	if repos.PersonalInfo == nil || repos.Skills == nil || repos.Education == nil || repos.Career == nil ||
		repos.Tags == nil || repos.Projects == nil || repos.Testimonials == nil || repos.FooterLinks == nil || repos.Posts == nil {
		return nil, fmt.Errorf("seed service requires every content repository")
	}
	return &SeedService{
		repos:  repos,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}, nil
}

// Seed stores every record of data that does not exist yet
func (s *SeedService) Seed(ctx context.Context, data *SeedData) (*SeedReport, error) {
	if data == nil {
		return nil, fmt.Errorf("seed data is required")
	}
	report := &SeedReport{}

	if data.PersonalInfo != nil {
		if err := s.seedPersonalInfo(ctx, data.PersonalInfo, report); err != nil {
			return report, err
		}
	}

	skills := map[string]content.Skill{}
	for _, in := range data.Skills {
		skill := &content.Skill{
			Name:        in.Name,
			Category:    content.SkillCategory(in.Category),
			Proficiency: in.Proficiency,
			Order:       in.Order,
			IsFeatured:  in.Featured,
		}
		stored, err := seedOne(ctx, report, "skills", s.repos.Skills, map[string]interface{}{"name": in.Name}, skill)
		if err != nil {
			return report, err
		}
		skills[stored.Name] = *stored
	}

	for _, in := range data.Education {
		edu := &content.Education{
			SchoolName:   in.SchoolName,
			Degree:       in.Degree,
			FieldOfStudy: in.FieldOfStudy,
			Location:     in.Location,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			Grade:        in.Grade,
			Description:  in.Description,
		}
		match := map[string]interface{}{"school_name": in.SchoolName, "degree": in.Degree}
		if _, err := seedOne(ctx, report, "education", s.repos.Education, match, edu); err != nil {
			return report, err
		}
	}

	for _, in := range data.Career {
		job := &content.CareerTimeline{
			JobTitle:     in.JobTitle,
			Company:      in.Company,
			Location:     in.Location,
			JobType:      in.JobType,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			IsCurrent:    in.IsCurrent,
			Description:  in.Description,
			Technologies: in.Technologies,
			Achievements: in.Achievements,
		}
		match := map[string]interface{}{"job_title": in.JobTitle, "company": in.Company}
		if _, err := seedOne(ctx, report, "career", s.repos.Career, match, job); err != nil {
			return report, err
		}
	}

	tags := map[string]content.Tag{}
	for _, name := range data.Tags {
		stored, err := seedOne(ctx, report, "tags", s.repos.Tags, map[string]interface{}{"name": name}, &content.Tag{Name: name})
		if err != nil {
			return report, err
		}
		tags[stored.Name] = *stored
	}

	for _, in := range data.Projects {
		project := &content.Project{
			Title:               in.Title,
			Slug:                in.Slug,
			Description:         in.Description,
			DetailedDescription: in.DetailedDescription,
			TechStack:           in.TechStack,
			RepoURL:             in.RepoURL,
			LiveURL:             in.LiveURL,
			Status:              content.ProjectStatus(in.Status),
			IsFeatured:          in.Featured,
			Order:               in.Order,
		}
		for _, name := range in.Tags {
			tag, ok := tags[name]
			if !ok {
				return report, fmt.Errorf("project %s references unknown tag %q", in.Slug, name)
			}
			project.Tags = append(project.Tags, tag)
		}
		for _, name := range in.Technologies {
			skill, ok := skills[name]
			if !ok {
				return report, fmt.Errorf("project %s references unknown skill %q", in.Slug, name)
			}
			project.Technologies = append(project.Technologies, skill)
		}
		if _, err := seedOne(ctx, report, "projects", content.Repository[*content.Project](s.repos.Projects), map[string]interface{}{"slug": in.Slug}, project); err != nil {
			return report, err
		}
	}

	for _, in := range data.Testimonials {
		testimonial := &content.Testimonial{
			Name:       in.Name,
			Role:       in.Role,
			Company:    in.Company,
			Comment:    in.Comment,
			Rating:     in.Rating,
			IsFeatured: in.Featured,
		}
		match := map[string]interface{}{"name": in.Name, "company": in.Company}
		if _, err := seedOne(ctx, report, "testimonials", s.repos.Testimonials, match, testimonial); err != nil {
			return report, err
		}
	}

	for _, in := range data.FooterLinks {
		link := &content.FooterLink{
			Title:      in.Title,
			URL:        in.URL,
			Category:   in.Category,
			IconClass:  in.IconClass,
			Order:      in.Order,
			IsExternal: in.External,
			IsActive:   true,
		}
		if _, err := seedOne(ctx, report, "footer_links", s.repos.FooterLinks, map[string]interface{}{"title": in.Title}, link); err != nil {
			return report, err
		}
	}

	for _, in := range data.BlogPosts {
		post := &content.BlogPost{
			Title:       in.Title,
			Slug:        in.Slug,
			Excerpt:     in.Excerpt,
			Body:        in.Body,
			Tags:        in.Tags,
			IsPublished: in.Published,
			IsFeatured:  in.Featured,
		}
		if in.Published {
			now := s.now()
			post.PublishedAt = &now
		}
		if _, err := seedOne(ctx, report, "blog_posts", content.Repository[*content.BlogPost](s.repos.Posts), map[string]interface{}{"slug": in.Slug}, post); err != nil {
			return report, err
		}
	}

	s.logger.Info(fmt.Sprintf("Seeding finished, %d records created", report.Created()))
	return report, nil
}

func (s *SeedService) seedPersonalInfo(ctx context.Context, in *seedPersonalInfo, report *SeedReport) error {
	_, err := s.repos.PersonalInfo.GetActive(ctx)
	if err == nil {
		report.record("personal_info", false)
		return nil
	}
	if !errors.Is(err, content.ErrNotFound) {
		return fmt.Errorf("failed to load active personal info: %w", err)
	}

	info := &content.PersonalInfo{
		FullName:        in.FullName,
		PortfolioName:   in.PortfolioName,
		CurrentRole:     in.CurrentRole,
		Bio:             in.Bio,
		Email:           in.Email,
		Phone:           in.Phone,
		Location:        in.Location,
		YearsExperience: in.YearsExperience,
		GithubURL:       in.GithubURL,
		LinkedinURL:     in.LinkedinURL,
		TwitterURL:      in.TwitterURL,
		WebsiteURL:      in.WebsiteURL,
		IsActive:        true,
	}
	if err := s.repos.PersonalInfo.Create(ctx, info); err != nil {
		return fmt.Errorf("failed to seed personal info: %w", err)
	}
	if err := s.repos.PersonalInfo.Activate(ctx, info.ID); err != nil {
		return err
	}
	report.record("personal_info", true)
	return nil
}

func seedOne[T content.Entity](ctx context.Context, report *SeedReport, entity string, repo content.Repository[T], match map[string]interface{}, item T) (T, error) {
	if n, ok := any(item).(content.Normalizer); ok {
		n.Normalize()
	}
	stored, created, err := repo.FirstOrCreate(ctx, match, item)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to seed %s: %w", entity, err)
	}
	report.record(entity, created)
	return stored, nil
}
