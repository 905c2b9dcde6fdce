package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// Public listing sizes
const (
	PublicPageSize = 6
	HomeItemCount  = 3
	RelatedCount   = 3
)

// SiteRepositories groups the repositories read by the public site
type SiteRepositories struct {
	Projects       content.ProjectRepository
	Posts          content.BlogPostRepository
	Skills         content.Repository[*content.Skill]
	Testimonials   content.Repository[*content.Testimonial]
	Education      content.Repository[*content.Education]
	Certifications content.Repository[*content.Certification]
	Awards         content.Repository[*content.Award]
	Career         content.Repository[*content.CareerTimeline]
	FooterLinks    content.Repository[*content.FooterLink]
	SEO            content.SEORepository
}

// siteService implements the content.SiteService interface
type siteService struct {
	repos        SiteRepositories
	personalInfo content.PersonalInfoService
	media        media.Service
	logger       logger.Logger
}

// NewSiteService creates a new siteService
func NewSiteService(repos SiteRepositories, personalInfo content.PersonalInfoService, mediaService media.Service, logger logger.Logger) (content.SiteService, error) {
	if repos.Projects == nil || repos.Posts == nil || repos.SEO == nil {
		return nil, fmt.Errorf("site service requires project, blog and seo repositories")
	}
	return &siteService{
		repos:        repos,
		personalInfo: personalInfo,
		media:        mediaService,
		logger:       logger,
	}, nil
}

func resolveAll[T media.Holder](m media.Service, items []T) {
	for _, item := range items {
		m.Resolve(item)
	}
}

// context builds the data shared by every page. Missing optional records fall back to defaults.
func (s *siteService) context(ctx context.Context, page string) (content.SiteContext, error) {
	site := content.SiteContext{
		PortfolioName: content.DefaultPortfolioName,
		FooterLinks:   map[string][]*content.FooterLink{},
	}

	info, err := s.personalInfo.GetActive(ctx)
	switch {
	case err == nil:
		site.PersonalInfo = info
		site.PortfolioName = info.DisplayName()
	case !errors.Is(err, content.ErrNotFound):
		return site, err
	}

	if s.repos.FooterLinks != nil {
		links, err := s.repos.FooterLinks.List(ctx, content.NewListQuery().Where("is_active", true))
		if err != nil {
			return site, err
		}
		site.FooterLinks = content.GroupFooterLinks(links)
	}

	seo, err := s.repos.SEO.GetByPage(ctx, page)
	switch {
	case err == nil:
		s.media.Resolve(seo)
		site.SEO = seo
	case !errors.Is(err, content.ErrNotFound):
		return site, err
	}
	return site, nil
}

func listAll[T content.Entity](ctx context.Context, repo content.Repository[T], query *content.ListQuery) ([]T, error) {
	if repo == nil {
		return []T{}, nil
	}
	if query == nil {
		query = content.NewListQuery()
	}
	return repo.List(ctx, query)
}

func (s *siteService) Home(ctx context.Context) (*content.HomeView, error) {
	site, err := s.context(ctx, content.PageHome)
	if err != nil {
		return nil, err
	}
	view := &content.HomeView{Site: site}

	if view.FeaturedProjects, _, err = s.repos.Projects.Search(ctx, content.ProjectFilter{FeaturedOnly: true}, HomeItemCount, 0); err != nil {
		return nil, err
	}
	if view.FeaturedSkills, err = listAll(ctx, s.repos.Skills, content.NewListQuery().Where("is_featured", true)); err != nil {
		return nil, err
	}
	testimonials := content.NewListQuery().Where("is_featured", true)
	testimonials.Limit = HomeItemCount
	if view.FeaturedTestimonials, err = listAll(ctx, s.repos.Testimonials, testimonials); err != nil {
		return nil, err
	}
	if view.LatestPosts, _, err = s.repos.Posts.Search(ctx, content.BlogFilter{PublishedOnly: true}, HomeItemCount, 0); err != nil {
		return nil, err
	}
	if view.FeaturedPosts, _, err = s.repos.Posts.Search(ctx, content.BlogFilter{PublishedOnly: true, FeaturedOnly: true}, HomeItemCount, 0); err != nil {
		return nil, err
	}

	resolveAll(s.media, view.FeaturedProjects)
	resolveAll(s.media, view.FeaturedTestimonials)
	resolveAll(s.media, view.LatestPosts)
	resolveAll(s.media, view.FeaturedPosts)
	return view, nil
}

func (s *siteService) About(ctx context.Context) (*content.AboutView, error) {
	site, err := s.context(ctx, content.PageAbout)
	if err != nil {
		return nil, err
	}
	view := &content.AboutView{Site: site}

	skills, err := listAll(ctx, s.repos.Skills, nil)
	if err != nil {
		return nil, err
	}
	view.SkillGroups = content.GroupSkills(skills)

	if view.Career, err = listAll(ctx, s.repos.Career, nil); err != nil {
		return nil, err
	}
	if view.Education, err = listAll(ctx, s.repos.Education, nil); err != nil {
		return nil, err
	}
	if view.Certifications, err = listAll(ctx, s.repos.Certifications, nil); err != nil {
		return nil, err
	}
	if view.Awards, err = listAll(ctx, s.repos.Awards, nil); err != nil {
		return nil, err
	}
	if view.Testimonials, err = listAll(ctx, s.repos.Testimonials, nil); err != nil {
		return nil, err
	}

	resolveAll(s.media, view.Certifications)
	resolveAll(s.media, view.Awards)
	resolveAll(s.media, view.Testimonials)
	return view, nil
}

// Projects returns one page of projects. Out of range pages are clamped to the last page.
func (s *siteService) Projects(ctx context.Context, filter content.ProjectFilter, page int) (*content.ProjectListView, error) {
	site, err := s.context(ctx, content.PageProjects)
	if err != nil {
		return nil, err
	}

	_, total, err := s.repos.Projects.Search(ctx, filter, 1, 0)
	if err != nil {
		return nil, err
	}
	number, offset := content.PageBounds(page, PublicPageSize, total)
	projects, total, err := s.repos.Projects.Search(ctx, filter, PublicPageSize, offset)
	if err != nil {
		return nil, err
	}
	technologies, err := s.repos.Projects.Technologies(ctx)
	if err != nil {
		return nil, err
	}

	resolveAll(s.media, projects)
	return &content.ProjectListView{
		Site:         site,
		Projects:     content.NewPage(projects, total, number, PublicPageSize),
		Technologies: technologies,
		Filter:       filter,
	}, nil
}

func (s *siteService) Project(ctx context.Context, slug string) (*content.ProjectDetailView, error) {
	site, err := s.context(ctx, content.PageProjects)
	if err != nil {
		return nil, err
	}

	project, err := s.repos.Projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	related, err := s.repos.Projects.Related(ctx, project, RelatedCount)
	if err != nil {
		return nil, err
	}

	s.media.Resolve(project)
	resolveAll(s.media, related)
	return &content.ProjectDetailView{Site: site, Project: project, Related: related}, nil
}

// Blog lists published posts only
func (s *siteService) Blog(ctx context.Context, filter content.BlogFilter, page int) (*content.BlogListView, error) {
	site, err := s.context(ctx, content.PageBlog)
	if err != nil {
		return nil, err
	}
	filter.PublishedOnly = true
	filter.FeaturedOnly = false

	_, total, err := s.repos.Posts.Search(ctx, filter, 1, 0)
	if err != nil {
		return nil, err
	}
	number, offset := content.PageBounds(page, PublicPageSize, total)
	posts, total, err := s.repos.Posts.Search(ctx, filter, PublicPageSize, offset)
	if err != nil {
		return nil, err
	}
	featured, _, err := s.repos.Posts.Search(ctx, content.BlogFilter{PublishedOnly: true, FeaturedOnly: true}, HomeItemCount, 0)
	if err != nil {
		return nil, err
	}
	tags, err := s.repos.Posts.AllTags(ctx)
	if err != nil {
		return nil, err
	}

	resolveAll(s.media, posts)
	resolveAll(s.media, featured)
	return &content.BlogListView{
		Site:          site,
		Posts:         content.NewPage(posts, total, number, PublicPageSize),
		FeaturedPosts: featured,
		AllTags:       tags,
		Filter:        filter,
	}, nil
}

// Post returns a published post. Drafts are reported as not found.
func (s *siteService) Post(ctx context.Context, slug string) (*content.BlogDetailView, error) {
	site, err := s.context(ctx, content.PageBlog)
	if err != nil {
		return nil, err
	}

	post, err := s.repos.Posts.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	related, err := s.repos.Posts.Related(ctx, post, RelatedCount)
	if err != nil {
		return nil, err
	}

	s.media.Resolve(post)
	resolveAll(s.media, related)
	return &content.BlogDetailView{Site: site, Post: post, Related: related}, nil
}

func (s *siteService) Contact(ctx context.Context) (*content.ContactView, error) {
	site, err := s.context(ctx, content.PageContact)
	if err != nil {
		return nil, err
	}
	return &content.ContactView{Site: site}, nil
}
