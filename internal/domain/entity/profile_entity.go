package entity

import (
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type ProfileProps struct {
	IDAccount string
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	AvatarURL string
	Bio       string
	Document  map[string]any
}

func (p ProfileProps) Clone() ProfileProps {
	p.Document = shared.CloneDocument(p.Document)
	return p
}

// Profile is the public face of an account. An account may own several.
type Profile struct {
	shared.Entity[ProfileProps]
}

func NewProfile(id string, props ProfileProps) Profile {
	return Profile{Entity: shared.NewEntity(id, props)}
}

func (p Profile) Equals(other Profile) bool { return p.Entity.Equals(other.Entity) }
