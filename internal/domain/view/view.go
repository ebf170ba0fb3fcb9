// Package view holds the shapes exposed to API clients.
package view

import (
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

// Account never carries the password hash.
type Account struct {
	IDAccount string         `json:"id_account"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Email     string         `json:"email"`
	Scope     string         `json:"scope"`
	Document  map[string]any `json:"document"`
}

type Profile struct {
	IDProfile string         `json:"id_profile"`
	IDAccount string         `json:"id_account"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Name      string         `json:"name"`
	AvatarURL string         `json:"avatar_url"`
	Bio       string         `json:"bio"`
	Document  map[string]any `json:"document"`
	HasAvatar bool           `json:"has_avatar"`
}

// The remaining resources are exposed exactly as they are stored.
type (
	Subscription = record.Subscription
	Feature      = record.Feature
	Work         = record.Work
)
