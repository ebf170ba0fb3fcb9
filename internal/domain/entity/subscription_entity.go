package entity

import (
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/valueobject"
)

type SubscriptionProps struct {
	IDAccount string
	IDFeature string
	CreatedAt time.Time
	UpdatedAt time.Time
	Level     valueobject.NumericLevel
}

// Clone is a plain copy: a NumericLevel is immutable.
func (p SubscriptionProps) Clone() SubscriptionProps { return p }

// Subscription grants an account a feature at a given level.
type Subscription struct {
	shared.Entity[SubscriptionProps]
}

func NewSubscription(id string, props SubscriptionProps) Subscription {
	return Subscription{Entity: shared.NewEntity(id, props)}
}

func (s Subscription) Equals(other Subscription) bool { return s.Entity.Equals(other.Entity) }
