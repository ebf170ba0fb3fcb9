package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
)

const profileColumns = `id_profile, id_account, created_at, updated_at, name, avatar_url, bio, document`

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, rec record.Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.IDProfile, rec.IDAccount, rec.CreatedAt, rec.UpdatedAt, rec.Name, rec.AvatarURL, rec.Bio, rec.Document)
	return translate(err)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (record.Profile, error) {
	return queryOne[record.Profile](ctx, r.pool, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id_profile = $1
	`, id)
}

func (r *ProfileRepository) ListByAccount(ctx context.Context, accountID string) ([]record.Profile, error) {
	return queryAll[record.Profile](ctx, r.pool, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id_account = $1
		ORDER BY created_at
	`, accountID)
}

func (r *ProfileRepository) Update(ctx context.Context, rec record.Profile) error {
	return execOne(ctx, r.pool, `
		UPDATE profiles
		SET name = $1, avatar_url = $2, bio = $3, document = $4, updated_at = $5
		WHERE id_profile = $6
	`, rec.Name, rec.AvatarURL, rec.Bio, rec.Document, rec.UpdatedAt, rec.IDProfile)
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.pool, `DELETE FROM profiles WHERE id_profile = $1`, id)
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
