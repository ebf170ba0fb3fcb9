package entity

import (
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type AccountProps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string // bcrypt hash
	Scope     string
	Document  map[string]any
}

func (p AccountProps) Clone() AccountProps {
	p.Document = shared.CloneDocument(p.Document)
	return p
}

// Account is the aggregate root for the account domain.
type Account struct {
	shared.Entity[AccountProps]
}

func NewAccount(id string, props AccountProps) Account {
	return Account{Entity: shared.NewEntity(id, props)}
}

func (a Account) Equals(other Account) bool { return a.Entity.Equals(other.Entity) }
