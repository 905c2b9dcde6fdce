//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sluggable struct {
	Slug string `validate:"required,slug"`
}

func TestSlugValidation(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"portfolio-site", true},
		{"go-1-23", true},
		{"snake_case", true},
		{"Portfolio", false},
		{"trailing-", false},
		{"-leading", false},
		{"double--dash", false},
		{"spaces here", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := Struct(&sluggable{Slug: tt.slug})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
			}
		})
	}
}

func TestStruct_MessageListsFields(t *testing.T) {
	err := Struct(&sluggable{})
	assert.EqualError(t, err, "validation failed: [Field: Slug, Tag: required]")
}

func TestErrorf(t *testing.T) {
	err := Errorf("end date %s is before start date", "2020-01-01")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "before start date")
}
