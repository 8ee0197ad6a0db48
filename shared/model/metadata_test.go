package model_test

import (
	"dueday/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	meta := model.NewMetadata(now)

	assert.Equal(t, now, meta.CreatedAt)
	assert.Equal(t, now, meta.LastModified)
}

func TestMetadata_Touch(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	meta := model.NewMetadata(created)

	later := created.Add(time.Hour)
	meta.Touch(later)
	assert.Equal(t, later, meta.LastModified)

	meta.Touch(created.Add(-time.Hour))
	assert.Equal(t, created, meta.LastModified, "last modified never precedes creation")
	assert.False(t, meta.LastModified.Before(meta.CreatedAt))
}
