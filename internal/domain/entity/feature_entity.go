package entity

import (
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type FeatureProps struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Scope       []string
}

func (p FeatureProps) Clone() FeatureProps {
	p.Scope = shared.CloneStrings(p.Scope)
	return p
}

// Feature is an entry of the feature catalog.
type Feature struct {
	shared.Entity[FeatureProps]
}

func NewFeature(id string, props FeatureProps) Feature {
	return Feature{Entity: shared.NewEntity(id, props)}
}

func (f Feature) Equals(other Feature) bool { return f.Entity.Equals(other.Entity) }
