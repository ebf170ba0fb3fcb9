package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
)

const featureColumns = `id_feature, created_at, updated_at, name, description, scope`

type FeatureRepository struct {
	pool *pgxpool.Pool
}

func NewFeatureRepository(pool *pgxpool.Pool) *FeatureRepository {
	return &FeatureRepository{pool: pool}
}

func (r *FeatureRepository) Create(ctx context.Context, rec record.Feature) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO features (`+featureColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.IDFeature, rec.CreatedAt, rec.UpdatedAt, rec.Name, rec.Description, rec.Scope)
	return translate(err)
}

func (r *FeatureRepository) GetByID(ctx context.Context, id string) (record.Feature, error) {
	return queryOne[record.Feature](ctx, r.pool, `
		SELECT `+featureColumns+`
		FROM features
		WHERE id_feature = $1
	`, id)
}

func (r *FeatureRepository) GetByName(ctx context.Context, name string) (record.Feature, error) {
	return queryOne[record.Feature](ctx, r.pool, `
		SELECT `+featureColumns+`
		FROM features
		WHERE name = $1
	`, name)
}

func (r *FeatureRepository) List(ctx context.Context) ([]record.Feature, error) {
	return queryAll[record.Feature](ctx, r.pool, `
		SELECT `+featureColumns+`
		FROM features
		ORDER BY created_at
	`)
}

func (r *FeatureRepository) Update(ctx context.Context, rec record.Feature) error {
	return execOne(ctx, r.pool, `
		UPDATE features
		SET name = $1, description = $2, scope = $3, updated_at = $4
		WHERE id_feature = $5
	`, rec.Name, rec.Description, rec.Scope, rec.UpdatedAt, rec.IDFeature)
}

func (r *FeatureRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.pool, `DELETE FROM features WHERE id_feature = $1`, id)
}

var _ repository.FeatureRepository = (*FeatureRepository)(nil)
