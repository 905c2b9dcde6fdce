//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostRepository_PublishedOnlyLookups(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	draft := CreateTestPost(t, "Draft Post", "go", false)
	require.NoError(t, tc.BlogPostRepo.Create(ctx, draft))

	_, err := tc.BlogPostRepo.GetBySlug(ctx, "draft-post", true)
	assert.True(t, errors.Is(err, content.ErrNotFound))

	fetched, err := tc.BlogPostRepo.GetBySlug(ctx, "draft-post", false)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, fetched.ID)
}

func TestBlogPostRepository_SearchAndTags(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	posts := []*content.BlogPost{
		CreateTestPost(t, "Go Generics", "go, generics", true),
		CreateTestPost(t, "Django Tips", "python, django", true),
		CreateTestPost(t, "Hidden Draft", "go", false),
	}
	for _, p := range posts {
		require.NoError(t, tc.BlogPostRepo.Create(ctx, p))
	}

	found, total, err := tc.BlogPostRepo.Search(ctx, content.BlogFilter{PublishedOnly: true, Tag: "generics"}, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Go Generics", found[0].Title)

	_, total, err = tc.BlogPostRepo.Search(ctx, content.BlogFilter{PublishedOnly: true, Tag: "go"}, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "tag matching is a substring match")

	_, total, err = tc.BlogPostRepo.Search(ctx, content.BlogFilter{PublishedOnly: true, Search: "DJANGO"}, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = tc.BlogPostRepo.Search(ctx, content.BlogFilter{}, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	tags, err := tc.BlogPostRepo.AllTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"django", "generics", "go", "python"}, tags)
}

func TestBlogPostRepository_Related(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	current := CreateTestPost(t, "Current", "go", true)
	sameTag := CreateTestPost(t, "Same Tag", "go, testing", true)
	featured := CreateTestPost(t, "Featured", "misc", true)
	featured.IsFeatured = true
	for _, p := range []*content.BlogPost{current, sameTag, featured} {
		require.NoError(t, tc.BlogPostRepo.Create(ctx, p))
	}

	related, err := tc.BlogPostRepo.Related(ctx, current, 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, sameTag.ID, related[0].ID)

	loner := CreateTestPost(t, "Loner", "unique", true)
	require.NoError(t, tc.BlogPostRepo.Create(ctx, loner))

	related, err = tc.BlogPostRepo.Related(ctx, loner, 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, featured.ID, related[0].ID)
}
