package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

type ProfileRepository interface {
	Create(ctx context.Context, rec record.Profile) error
	GetByID(ctx context.Context, id string) (record.Profile, error)
	ListByAccount(ctx context.Context, accountID string) ([]record.Profile, error)
	Update(ctx context.Context, rec record.Profile) error
	Delete(ctx context.Context, id string) error
}
