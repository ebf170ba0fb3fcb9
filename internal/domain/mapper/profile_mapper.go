package mapper

import (
	"strings"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

type ProfileMapper struct{}

var _ Mapper[record.Profile, entity.Profile, view.Profile] = ProfileMapper{}

func (ProfileMapper) MapDataToEntity(rec record.Profile) entity.Profile {
	return entity.NewProfile(rec.IDProfile, entity.ProfileProps{
		IDAccount: rec.IDAccount,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Name:      rec.Name,
		AvatarURL: rec.AvatarURL,
		Bio:       rec.Bio,
		Document:  shared.CloneDocument(rec.Document),
	})
}

func (ProfileMapper) MapEntityToData(ent entity.Profile) record.Profile {
	p := ent.Props()
	return record.Profile{
		IDProfile: ent.ID(),
		IDAccount: p.IDAccount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		Document:  shared.CloneDocument(p.Document),
	}
}

func (ProfileMapper) MapDataToView(rec record.Profile) view.Profile {
	return view.Profile{
		IDProfile: rec.IDProfile,
		IDAccount: rec.IDAccount,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Name:      rec.Name,
		AvatarURL: rec.AvatarURL,
		Bio:       rec.Bio,
		Document:  shared.CloneDocument(rec.Document),
		HasAvatar: strings.TrimSpace(rec.AvatarURL) != "",
	}
}
