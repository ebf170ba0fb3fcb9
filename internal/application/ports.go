package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

// Publisher enqueues background jobs (email notifications).
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Session is the server-side half of a login; tokens carry its SID.
type Session struct {
	AccountID string
	Email     string
	Scope     string
	SID       string
}

type SessionStore interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, accountID string) (Session, bool, error)
	Delete(ctx context.Context, accountID string) error
}

// FeatureCache keeps rendered feature views close to the API.
type FeatureCache interface {
	GetFeature(ctx context.Context, id string) (view.Feature, bool, error)
	SetFeature(ctx context.Context, v view.Feature) error
	GetList(ctx context.Context) ([]view.Feature, bool, error)
	SetList(ctx context.Context, vs []view.Feature) error
	Invalidate(ctx context.Context, ids ...string) error
}

// ProfileIndex is the full-text search side of profiles.
type ProfileIndex interface {
	Index(ctx context.Context, v view.Profile) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, q string, size int) ([]view.Profile, error)
}

// AvatarStore persists uploaded images and returns their public URL.
type AvatarStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

var ErrStorageUnavailable = errors.New("storage not configured")

// parseID validates an identifier received from a client.
func parseID(raw string) (string, error) {
	id, err := valueobject.InsertIdentifier(raw)
	if err != nil {
		return "", err
	}
	return id.Value(), nil
}

// requiredText trims a mandatory text field and rejects it when nothing is left.
func requiredText(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", shared.NewRequiredValueMissing(field+" must not be blank", raw)
	}
	return v, nil
}

func emptyDocument(doc map[string]any) map[string]any {
	if doc == nil {
		return map[string]any{}
	}
	return doc
}
