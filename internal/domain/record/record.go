// Package record holds the persisted shape of each resource: the column
// layout the postgres repositories read and write.
package record

import "time"

type Account struct {
	IDAccount string         `db:"id_account" json:"id_account"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
	Email     string         `db:"email" json:"email"`
	Password  string         `db:"password" json:"password"`
	Scope     string         `db:"scope" json:"scope"`
	Document  map[string]any `db:"document" json:"document"`
}

type Profile struct {
	IDProfile string         `db:"id_profile" json:"id_profile"`
	IDAccount string         `db:"id_account" json:"id_account"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
	Name      string         `db:"name" json:"name"`
	AvatarURL string         `db:"avatar_url" json:"avatar_url"`
	Bio       string         `db:"bio" json:"bio"`
	Document  map[string]any `db:"document" json:"document"`
}

type Subscription struct {
	IDSubscription string    `db:"id_subscription" json:"id_subscription"`
	IDAccount      string    `db:"id_account" json:"id_account"`
	IDFeature      string    `db:"id_feature" json:"id_feature"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
	Level          float64   `db:"level" json:"level"`
}

type Feature struct {
	IDFeature   string    `db:"id_feature" json:"id_feature"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Scope       []string  `db:"scope" json:"scope"`
}

type Work struct {
	IDWork      string    `db:"id_work" json:"id_work"`
	IDProfile   string    `db:"id_profile" json:"id_profile"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Tags        []string  `db:"tags" json:"tags"`
}
