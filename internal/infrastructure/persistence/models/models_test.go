//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectModel_FromDomainAndBack(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	project := &content.Project{
		Base:        content.Base{ID: "p-1", CreatedAt: now, UpdatedAt: now},
		Title:       "Portfolio",
		Slug:        "portfolio",
		Description: "A site",
		Image:       media.Ref{Backend: "cloudinary", Kind: media.KindImage, Key: "projects/shot", URL: "https://res.cloudinary.com/demo/image/upload/projects/shot"},
		Status:      content.ProjectInProgress,
		Order:       2,
		Tags:        []content.Tag{{Base: content.Base{ID: "t-1"}, Name: "go"}},
		Technologies: []content.Skill{
			{Base: content.Base{ID: "s-1"}, Name: "Go", Category: content.SkillBackend, Proficiency: 5},
		},
	}

	var model ProjectModel
	model.FromDomain(project)

	assert.Equal(t, "cloudinary", model.Image.Backend)
	assert.Equal(t, "projects/shot", model.Image.Key)
	require.Len(t, model.Tags, 1)
	assert.Equal(t, "t-1", model.Tags[0].ID)

	back := model.ToDomain()
	assert.Equal(t, project.Image, back.Image)
	assert.Equal(t, project.Status, back.Status)
	assert.Equal(t, project.Order, back.Order)
	assert.Equal(t, "go", back.Tags[0].Name)
	assert.Equal(t, content.SkillBackend, back.Technologies[0].Category)
}

func TestProjectModel_ToDomainWithoutRelations(t *testing.T) {
	model := ProjectModel{Title: "Bare"}
	p := model.ToDomain()
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Technologies)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "projects", ProjectModel{}.TableName())
	assert.Equal(t, "personal_info", PersonalInfoModel{}.TableName())
	assert.Equal(t, "seo_settings", SEOSettingsModel{}.TableName())
	assert.Equal(t, "contact_messages", ContactMessageModel{}.TableName())
	assert.Len(t, All(), 14)
}
