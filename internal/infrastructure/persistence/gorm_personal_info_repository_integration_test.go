//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfoRepository_ActivateIsExclusive(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := tc.PersonalInfoRepo.GetActive(ctx)
	assert.True(t, errors.Is(err, content.ErrNotFound))

	first := &content.PersonalInfo{FullName: "First Owner", IsActive: true}
	second := &content.PersonalInfo{FullName: "Second Owner"}
	require.NoError(t, tc.PersonalInfoRepo.Create(ctx, first))
	require.NoError(t, tc.PersonalInfoRepo.Create(ctx, second))

	require.NoError(t, tc.PersonalInfoRepo.Activate(ctx, second.ID))

	active, err := tc.PersonalInfoRepo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	activeCount, err := tc.PersonalInfoRepo.Count(ctx, content.NewListQuery().Where("is_active", true))
	require.NoError(t, err)
	assert.Equal(t, int64(1), activeCount)

	err = tc.PersonalInfoRepo.Activate(ctx, "missing")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestPersonalInfoRepository_MediaRoundTrip(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	info := &content.PersonalInfo{
		FullName:     "Owner",
		ProfileImage: media.Ref{Backend: "local", Kind: media.KindImage, Key: "profile/me.png"},
		Resume:       media.Ref{Backend: "cloudinary", Kind: media.KindDocument, Key: "files/cv.pdf", URL: "https://res.cloudinary.com/demo/raw/upload/files/cv.pdf"},
	}
	require.NoError(t, tc.PersonalInfoRepo.Create(ctx, info))

	fetched, err := tc.PersonalInfoRepo.GetByID(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ProfileImage, fetched.ProfileImage)
	assert.Equal(t, info.Resume, fetched.Resume)
}

func TestSEORepository_GetByPage(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	seo := &content.SEOSettings{Page: content.PageHome, Title: "Home", Description: "Welcome"}
	require.NoError(t, tc.SEORepo.Create(ctx, seo))

	fetched, err := tc.SEORepo.GetByPage(ctx, content.PageHome)
	require.NoError(t, err)
	assert.Equal(t, seo.ID, fetched.ID)

	_, err = tc.SEORepo.GetByPage(ctx, content.PageBlog)
	assert.True(t, errors.Is(err, content.ErrNotFound))

	dup := &content.SEOSettings{Page: content.PageHome, Title: "Again", Description: "Dup"}
	err = tc.SEORepo.Create(ctx, dup)
	assert.True(t, errors.Is(err, content.ErrConflict))
}
