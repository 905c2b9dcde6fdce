package v1

import (
	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services groups everything the HTTP layer calls into
type Services struct {
	Site         content.SiteService
	Contact      contact.Service
	PersonalInfo content.PersonalInfoService
	Media        media.Service
	Auth         accounts.AuthService
	Dashboard    StatsProvider
	Health       HealthChecker

	Projects       content.Service[*content.Project]
	Posts          content.Service[*content.BlogPost]
	Education      content.Service[*content.Education]
	Certifications content.Service[*content.Certification]
	Awards         content.Service[*content.Award]
	SEO            content.Service[*content.SEOSettings]
	Testimonials   content.Service[*content.Testimonial]
	Skills         content.Service[*content.Skill]
	Career         content.Service[*content.CareerTimeline]
	FooterLinks    content.Service[*content.FooterLink]
	Tags           content.Service[*content.Tag]
}

// SetupRoutes registers the public site, media, health and dashboard routes.
func SetupRoutes(r *gin.Engine, services *Services, auth *config.AuthSettings, staticRoot string, logger logger.Logger) {
	// Public site
	siteHandler := NewSiteHandler(services.Site, services.Contact)
	r.GET("/", siteHandler.Home)
	r.GET("/about/", siteHandler.About)
	r.GET("/projects/", siteHandler.Projects)
	r.GET("/projects/:slug/", siteHandler.ProjectDetail)
	r.GET("/blog/", siteHandler.Blog)
	r.GET("/blog/:slug/", siteHandler.PostDetail)
	r.GET("/contact/", siteHandler.Contact)
	r.POST("/contact/", siteHandler.SubmitContact)

	// Media
	mediaHandler := NewMediaHandler(services.Media, services.PersonalInfo, logger)
	r.GET("/media/*filepath", mediaHandler.Serve)
	r.GET("/resume/", mediaHandler.Resume)
	r.GET("/profile-image/", mediaHandler.ProfileImage)
	if staticRoot != "" {
		r.Static("/static", staticRoot)
	}

	// Health
	healthHandler := NewHealthHandler(services.Health)
	r.GET("/health/", healthHandler.Health)
	r.GET("/healthz/", healthHandler.Health)
	r.GET("/ready/", healthHandler.Ready)

	// Login
	authHandler := NewAuthHandler(services.Auth, auth, logger)
	r.GET(loginPath, NoCache(), authHandler.LoginPage)
	r.POST(loginPath, NoCache(), authHandler.Login)
	r.POST("/dashboard/logout/", NoCache(), authHandler.Logout)

	dashboard := r.Group(dashboardPath, NoCache(), AuthRequired(services.Auth, auth.CookieName, logger))

	dashboardHandler := NewDashboardHandler(services.Dashboard, services.Contact, services.PersonalInfo)
	dashboard.GET("/", dashboardHandler.Overview)
	dashboard.GET("/personal-info/", dashboardHandler.PersonalInfo)
	dashboard.PUT("/personal-info/", dashboardHandler.UpdatePersonalInfo)
	dashboard.POST("/personal-info/upload-cv/", dashboardHandler.UploadResume)
	dashboard.POST("/personal-info/profile-image/", dashboardHandler.UploadProfileImage)
	dashboard.POST("/media/", mediaHandler.Upload)

	// Inbox. Messages only arrive through the contact form.
	dashboard.GET("/messages/", dashboardHandler.Messages)
	dashboard.POST("/messages/bulk/", dashboardHandler.BulkMessages)
	dashboard.GET("/messages/:id/", dashboardHandler.Message)
	dashboard.DELETE("/messages/:id/", dashboardHandler.DeleteMessage)

	registerCrud(dashboard, "projects", NewCrudHandler("Project", services.Projects, func() *content.Project { return &content.Project{} }))
	registerCrud(dashboard, "blog", NewCrudHandler("Blog post", services.Posts, func() *content.BlogPost { return &content.BlogPost{} }))
	registerCrud(dashboard, "education", NewCrudHandler("Education entry", services.Education, func() *content.Education { return &content.Education{} }))
	registerCrud(dashboard, "certifications", NewCrudHandler("Certification", services.Certifications, func() *content.Certification { return &content.Certification{} }))
	registerCrud(dashboard, "awards", NewCrudHandler("Award", services.Awards, func() *content.Award { return &content.Award{} }))
	registerCrud(dashboard, "seo", NewCrudHandler("SEO settings", services.SEO, func() *content.SEOSettings { return &content.SEOSettings{} }))
	registerCrud(dashboard, "testimonials", NewCrudHandler("Testimonial", services.Testimonials, func() *content.Testimonial { return &content.Testimonial{} }))
	registerCrud(dashboard, "skills", NewCrudHandler("Skill", services.Skills, func() *content.Skill { return &content.Skill{} }))
	registerCrud(dashboard, "career", NewCrudHandler("Career entry", services.Career, func() *content.CareerTimeline { return &content.CareerTimeline{} }))
	registerCrud(dashboard, "footer-links", NewCrudHandler("Footer link", services.FooterLinks, func() *content.FooterLink { return &content.FooterLink{} }))
	registerCrud(dashboard, "tags", NewCrudHandler("Tag", services.Tags, func() *content.Tag { return &content.Tag{} }))
}

func registerCrud(group *gin.RouterGroup, resource string, handler CrudHandler) {
	group.GET("/"+resource+"/", handler.List)
	group.POST("/"+resource+"/", handler.Create)
	group.GET("/"+resource+"/:id/", handler.Get)
	group.PUT("/"+resource+"/:id/", handler.Update)
	group.DELETE("/"+resource+"/:id/", handler.Delete)
}
