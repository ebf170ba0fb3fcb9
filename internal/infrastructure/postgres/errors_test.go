package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), repository.ErrNotFound)

	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "accounts_email_key"}
	err := translate(dup)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Contains(t, err.Error(), "accounts_email_key")

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
