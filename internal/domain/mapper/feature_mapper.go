package mapper

import (
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

type FeatureMapper struct{}

var _ Mapper[record.Feature, entity.Feature, view.Feature] = FeatureMapper{}

func (FeatureMapper) MapDataToEntity(rec record.Feature) entity.Feature {
	return entity.NewFeature(rec.IDFeature, entity.FeatureProps{
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Name:        rec.Name,
		Description: rec.Description,
		Scope:       shared.CloneStrings(rec.Scope),
	})
}

func (FeatureMapper) MapEntityToData(ent entity.Feature) record.Feature {
	p := ent.Props()
	return record.Feature{
		IDFeature:   ent.ID(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Name:        p.Name,
		Description: p.Description,
		Scope:       shared.CloneStrings(p.Scope),
	}
}

func (FeatureMapper) MapDataToView(rec record.Feature) view.Feature {
	rec.Scope = shared.CloneStrings(rec.Scope)
	return rec
}
