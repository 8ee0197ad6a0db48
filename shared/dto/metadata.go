package dto

import (
	"time"

	"dueday/shared/constant"
	"dueday/shared/model"
	"dueday/shared/timezone"
)

// Metadata is the response form of model.Metadata. Unset timestamps render empty.
type Metadata struct {
	CreatedAt    string `json:"created_at"`
	LastModified string `json:"last_modified"`
}

func MetadataFrom(meta model.Metadata) Metadata {
	return Metadata{
		CreatedAt:    formatTime(meta.CreatedAt),
		LastModified: formatTime(meta.LastModified),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
