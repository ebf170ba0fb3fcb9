package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
)

const workColumns = `id_work, id_profile, created_at, updated_at, title, description, tags`

type WorkRepository struct {
	pool *pgxpool.Pool
}

func NewWorkRepository(pool *pgxpool.Pool) *WorkRepository {
	return &WorkRepository{pool: pool}
}

func (r *WorkRepository) Create(ctx context.Context, rec record.Work) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO works (`+workColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.IDWork, rec.IDProfile, rec.CreatedAt, rec.UpdatedAt, rec.Title, rec.Description, rec.Tags)
	return translate(err)
}

func (r *WorkRepository) GetByID(ctx context.Context, id string) (record.Work, error) {
	return queryOne[record.Work](ctx, r.pool, `
		SELECT `+workColumns+`
		FROM works
		WHERE id_work = $1
	`, id)
}

func (r *WorkRepository) ListByProfile(ctx context.Context, profileID string) ([]record.Work, error) {
	return queryAll[record.Work](ctx, r.pool, `
		SELECT `+workColumns+`
		FROM works
		WHERE id_profile = $1
		ORDER BY created_at
	`, profileID)
}

func (r *WorkRepository) Update(ctx context.Context, rec record.Work) error {
	return execOne(ctx, r.pool, `
		UPDATE works
		SET title = $1, description = $2, tags = $3, updated_at = $4
		WHERE id_work = $5
	`, rec.Title, rec.Description, rec.Tags, rec.UpdatedAt, rec.IDWork)
}

func (r *WorkRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.pool, `DELETE FROM works WHERE id_work = $1`, id)
}

var _ repository.WorkRepository = (*WorkRepository)(nil)
