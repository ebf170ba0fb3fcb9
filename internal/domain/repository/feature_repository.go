package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

type FeatureRepository interface {
	Create(ctx context.Context, rec record.Feature) error
	GetByID(ctx context.Context, id string) (record.Feature, error)
	GetByName(ctx context.Context, name string) (record.Feature, error)
	List(ctx context.Context) ([]record.Feature, error)
	Update(ctx context.Context, rec record.Feature) error
	Delete(ctx context.Context, id string) error
}
