package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

// AccountRepository defines the persistence operations on account records.
type AccountRepository interface {
	Create(ctx context.Context, rec record.Account) error
	GetByID(ctx context.Context, id string) (record.Account, error)
	GetByEmail(ctx context.Context, email string) (record.Account, error)
	Update(ctx context.Context, rec record.Account) error
	Delete(ctx context.Context, id string) error
}
