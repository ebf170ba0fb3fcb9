package entity

import (
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type WorkProps struct {
	IDProfile   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	Tags        []string
}

func (p WorkProps) Clone() WorkProps {
	p.Tags = shared.CloneStrings(p.Tags)
	return p
}

// Work is a portfolio item published under a profile.
type Work struct {
	shared.Entity[WorkProps]
}

func NewWork(id string, props WorkProps) Work {
	return Work{Entity: shared.NewEntity(id, props)}
}

func (w Work) Equals(other Work) bool { return w.Entity.Equals(other.Entity) }
