package mapper

import (
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

type SubscriptionMapper struct{}

var _ Mapper[record.Subscription, entity.Subscription, view.Subscription] = SubscriptionMapper{}

// MapDataToEntity uses the trusted level constructor: stored levels were
// range checked on the way in.
func (SubscriptionMapper) MapDataToEntity(rec record.Subscription) entity.Subscription {
	return entity.NewSubscription(rec.IDSubscription, entity.SubscriptionProps{
		IDAccount: rec.IDAccount,
		IDFeature: rec.IDFeature,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Level:     valueobject.InsertNumericLevel(rec.Level),
	})
}

func (SubscriptionMapper) MapEntityToData(ent entity.Subscription) record.Subscription {
	p := ent.Props()
	return record.Subscription{
		IDSubscription: ent.ID(),
		IDAccount:      p.IDAccount,
		IDFeature:      p.IDFeature,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Level:          p.Level.Value(),
	}
}

func (SubscriptionMapper) MapDataToView(rec record.Subscription) view.Subscription {
	return rec
}
