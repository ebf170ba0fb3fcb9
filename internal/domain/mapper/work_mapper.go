package mapper

import (
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

type WorkMapper struct{}

var _ Mapper[record.Work, entity.Work, view.Work] = WorkMapper{}

func (WorkMapper) MapDataToEntity(rec record.Work) entity.Work {
	return entity.NewWork(rec.IDWork, entity.WorkProps{
		IDProfile:   rec.IDProfile,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Title:       rec.Title,
		Description: rec.Description,
		Tags:        shared.CloneStrings(rec.Tags),
	})
}

func (WorkMapper) MapEntityToData(ent entity.Work) record.Work {
	p := ent.Props()
	return record.Work{
		IDWork:      ent.ID(),
		IDProfile:   p.IDProfile,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Title:       p.Title,
		Description: p.Description,
		Tags:        shared.CloneStrings(p.Tags),
	}
}

func (WorkMapper) MapDataToView(rec record.Work) view.Work {
	rec.Tags = shared.CloneStrings(rec.Tags)
	return rec
}
