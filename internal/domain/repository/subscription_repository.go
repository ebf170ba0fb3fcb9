package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, rec record.Subscription) error
	GetByID(ctx context.Context, id string) (record.Subscription, error)
	ListByAccount(ctx context.Context, accountID string) ([]record.Subscription, error)
	Update(ctx context.Context, rec record.Subscription) error
	Delete(ctx context.Context, id string) error
}
