package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
)

const subscriptionColumns = `id_subscription, id_account, id_feature, created_at, updated_at, level`

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) Create(ctx context.Context, rec record.Subscription) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscriptions (`+subscriptionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.IDSubscription, rec.IDAccount, rec.IDFeature, rec.CreatedAt, rec.UpdatedAt, rec.Level)
	return translate(err)
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (record.Subscription, error) {
	return queryOne[record.Subscription](ctx, r.pool, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE id_subscription = $1
	`, id)
}

func (r *SubscriptionRepository) ListByAccount(ctx context.Context, accountID string) ([]record.Subscription, error) {
	return queryAll[record.Subscription](ctx, r.pool, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE id_account = $1
		ORDER BY created_at
	`, accountID)
}

func (r *SubscriptionRepository) Update(ctx context.Context, rec record.Subscription) error {
	return execOne(ctx, r.pool, `
		UPDATE subscriptions
		SET level = $1, updated_at = $2
		WHERE id_subscription = $3
	`, rec.Level, rec.UpdatedAt, rec.IDSubscription)
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.pool, `DELETE FROM subscriptions WHERE id_subscription = $1`, id)
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
