package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// Dashboard overview sizes
const (
	RecentProjectCount = 3
	RecentPostCount    = 3
	RecentMessageCount = 5
)

// DashboardStats is the dashboard landing page
type DashboardStats struct {
	TotalProjects    int64                     `json:"total_projects"`
	FeaturedProjects int64                     `json:"featured_projects"`
	TotalPosts       int64                     `json:"total_posts"`
	PublishedPosts   int64                     `json:"published_posts"`
	UnreadMessages   int64                     `json:"unread_messages"`
	RecentMessages   int64                     `json:"recent_messages"`
	LatestProjects   []*content.Project        `json:"latest_projects"`
	LatestPosts      []*content.BlogPost       `json:"latest_posts"`
	LatestMessages   []*contact.ContactMessage `json:"latest_messages"`
}

// DashboardService summarises site content for the dashboard
type DashboardService struct {
	projects content.ProjectRepository
	posts    content.BlogPostRepository
	messages contact.Repository
	logger   logger.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(projects content.ProjectRepository, posts content.BlogPostRepository, messages contact.Repository, logger logger.Logger) (*DashboardService, error) {
	if projects == nil || posts == nil || messages == nil {
		return nil, fmt.Errorf("dashboard service requires project, blog and message repositories")
	}
	return &DashboardService{
		projects: projects,
		posts:    posts,
		messages: messages,
		logger:   logger,
	}, nil
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalProjects, err = s.projects.Count(ctx, nil); err != nil {
		return nil, err
	}
	if stats.FeaturedProjects, err = s.projects.Count(ctx, content.NewListQuery().Where("is_featured", true)); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.posts.Count(ctx, nil); err != nil {
		return nil, err
	}
	if stats.PublishedPosts, err = s.posts.Count(ctx, content.NewListQuery().Where("is_published", true)); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = s.messages.Count(ctx, &contact.MessageQuery{Status: contact.StatusUnread}); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = s.messages.CountSince(ctx, time.Now().UTC().Add(-recentWindow)); err != nil {
		return nil, err
	}

	latest := &content.ListQuery{SortBy: "created_at", SortOrder: "desc", Limit: RecentProjectCount}
	if stats.LatestProjects, err = s.projects.List(ctx, latest); err != nil {
		return nil, err
	}
	latest = &content.ListQuery{SortBy: "created_at", SortOrder: "desc", Limit: RecentPostCount}
	if stats.LatestPosts, err = s.posts.List(ctx, latest); err != nil {
		return nil, err
	}
	if stats.LatestMessages, err = s.messages.List(ctx, &contact.MessageQuery{Limit: RecentMessageCount}); err != nil {
		return nil, err
	}
	return stats, nil
}
