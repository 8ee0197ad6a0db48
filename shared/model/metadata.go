package model

import "time"

type Metadata struct {
	CreatedAt    time.Time `db:"created_at"`
	LastModified time.Time `db:"last_modified"`
}

func NewMetadata(now time.Time) Metadata {
	return Metadata{
		CreatedAt:    now,
		LastModified: now,
	}
}

// Touch stamps LastModified, never letting it fall behind CreatedAt.
func (m *Metadata) Touch(now time.Time) {
	if now.Before(m.CreatedAt) {
		now = m.CreatedAt
	}

	m.LastModified = now
}
