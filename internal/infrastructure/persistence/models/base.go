package models

import (
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
)

// BaseColumns are shared by every content table
type BaseColumns struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func baseFromDomain(b *content.Base) BaseColumns {
	return BaseColumns{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func (c BaseColumns) toDomain() content.Base {
	return content.Base{ID: c.ID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// MediaColumns stores a media.Ref inline, prefixed per field
type MediaColumns struct {
	Backend string `gorm:"type:varchar(20)"`
	Kind    string `gorm:"type:varchar(20)"`
	Key     string `gorm:"type:varchar(500)"`
	URL     string `gorm:"type:varchar(1000)"`
}

func mediaFromDomain(r media.Ref) MediaColumns {
	return MediaColumns{Backend: r.Backend, Kind: string(r.Kind), Key: r.Key, URL: r.URL}
}

func (c MediaColumns) toDomain() media.Ref {
	return media.Ref{Backend: c.Backend, Kind: media.Kind(c.Kind), Key: c.Key, URL: c.URL}
}
