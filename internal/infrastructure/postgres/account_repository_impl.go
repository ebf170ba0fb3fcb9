package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
)

const accountColumns = `id_account, created_at, updated_at, email, password, scope, document`

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, rec record.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.IDAccount, rec.CreatedAt, rec.UpdatedAt, rec.Email, rec.Password, rec.Scope, rec.Document)
	return translate(err)
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (record.Account, error) {
	return queryOne[record.Account](ctx, r.pool, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id_account = $1
	`, id)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (record.Account, error) {
	return queryOne[record.Account](ctx, r.pool, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = $1
	`, email)
}

func (r *AccountRepository) Update(ctx context.Context, rec record.Account) error {
	return execOne(ctx, r.pool, `
		UPDATE accounts
		SET email = $1, password = $2, scope = $3, document = $4, updated_at = $5
		WHERE id_account = $6
	`, rec.Email, rec.Password, rec.Scope, rec.Document, rec.UpdatedAt, rec.IDAccount)
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.pool, `DELETE FROM accounts WHERE id_account = $1`, id)
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
