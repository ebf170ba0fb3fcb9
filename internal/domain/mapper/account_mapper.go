package mapper

import (
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

type AccountMapper struct{}

var _ Mapper[record.Account, entity.Account, view.Account] = AccountMapper{}

func (AccountMapper) MapDataToEntity(rec record.Account) entity.Account {
	return entity.NewAccount(rec.IDAccount, entity.AccountProps{
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Email:     rec.Email,
		Password:  rec.Password,
		Scope:     rec.Scope,
		Document:  shared.CloneDocument(rec.Document),
	})
}

func (AccountMapper) MapEntityToData(ent entity.Account) record.Account {
	p := ent.Props()
	return record.Account{
		IDAccount: ent.ID(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Email:     p.Email,
		Password:  p.Password,
		Scope:     p.Scope,
		Document:  shared.CloneDocument(p.Document),
	}
}

// MapDataToView drops the password hash.
func (AccountMapper) MapDataToView(rec record.Account) view.Account {
	return view.Account{
		IDAccount: rec.IDAccount,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Email:     rec.Email,
		Scope:     rec.Scope,
		Document:  shared.CloneDocument(rec.Document),
	}
}
