package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

type WorkRepository interface {
	Create(ctx context.Context, rec record.Work) error
	GetByID(ctx context.Context, id string) (record.Work, error)
	ListByProfile(ctx context.Context, profileID string) ([]record.Work, error)
	Update(ctx context.Context, rec record.Work) error
	Delete(ctx context.Context, id string) error
}
