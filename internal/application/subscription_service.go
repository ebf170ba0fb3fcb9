package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/mapper"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	repo "github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
	"github.com/oksasatya/go-ddd-resource-api/pkg/mailer"
	tpl "github.com/oksasatya/go-ddd-resource-api/pkg/mailer/templates"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("account already subscribed to feature")
)

type SubscriptionService struct {
	Repo      repo.SubscriptionRepository
	Accounts  repo.AccountRepository
	Features  repo.FeatureRepository
	Publisher Publisher
	Logger    *logrus.Logger

	mapper mapper.SubscriptionMapper
	now    func() time.Time
}

func NewSubscriptionService(r repo.SubscriptionRepository, accounts repo.AccountRepository, features repo.FeatureRepository, pub Publisher, logger *logrus.Logger) *SubscriptionService {
	return &SubscriptionService{Repo: r, Accounts: accounts, Features: features, Publisher: pub, Logger: logger, now: time.Now}
}

func (s *SubscriptionService) Create(ctx context.Context, accountID, featureID string, level float64) (view.Subscription, error) {
	aid, err := parseID(accountID)
	if err != nil {
		return view.Subscription{}, err
	}
	fid, err := parseID(featureID)
	if err != nil {
		return view.Subscription{}, err
	}
	lvl, err := valueobject.CreateOrUpdateNumericLevel(level)
	if err != nil {
		return view.Subscription{}, err
	}
	acc, err := s.Accounts.GetByID(ctx, aid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Subscription{}, ErrAccountNotFound
		}
		return view.Subscription{}, err
	}
	feat, err := s.Features.GetByID(ctx, fid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Subscription{}, ErrFeatureNotFound
		}
		return view.Subscription{}, err
	}

	now := s.now().UTC()
	sub := entity.NewSubscription(valueobject.CreateIdentifier().Value(), entity.SubscriptionProps{
		IDAccount: aid,
		IDFeature: fid,
		CreatedAt: now,
		UpdatedAt: now,
		Level:     lvl,
	})
	rec := s.mapper.MapEntityToData(sub)
	if err := s.Repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return view.Subscription{}, ErrAlreadySubscribed
		}
		return view.Subscription{}, err
	}

	if s.Publisher != nil {
		job := mailer.EmailJob{
			To:       acc.Email,
			Template: tpl.SubscriptionStarted,
			Data:     tpl.NewSubscriptionStartedData(acc.Email, feat.Name, lvl.Value(), tpl.WithTime(now)),
		}
		if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("subscription_id", rec.IDSubscription).Warn("failed to publish email job")
		}
	}
	return s.mapper.MapDataToView(rec), nil
}

func (s *SubscriptionService) Get(ctx context.Context, id string) (view.Subscription, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Subscription{}, err
	}
	return s.mapper.MapDataToView(rec), nil
}

func (s *SubscriptionService) ListByAccount(ctx context.Context, accountID string) ([]view.Subscription, error) {
	aid, err := parseID(accountID)
	if err != nil {
		return nil, err
	}
	recs, err := s.Repo.ListByAccount(ctx, aid)
	if err != nil {
		return nil, err
	}
	out := make([]view.Subscription, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.mapper.MapDataToView(rec))
	}
	return out, nil
}

// UpdateLevel leaves the record untouched when the level does not change.
func (s *SubscriptionService) UpdateLevel(ctx context.Context, id string, level float64) (view.Subscription, error) {
	lvl, err := valueobject.CreateOrUpdateNumericLevel(level)
	if err != nil {
		return view.Subscription{}, err
	}
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Subscription{}, err
	}
	current := s.mapper.MapDataToEntity(rec)
	p := current.Props()
	if p.Level.Equals(lvl) {
		return s.mapper.MapDataToView(rec), nil
	}
	p.Level = lvl
	p.UpdatedAt = s.now().UTC()

	updated := s.mapper.MapEntityToData(entity.NewSubscription(current.ID(), p))
	if err := s.Repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Subscription{}, ErrSubscriptionNotFound
		}
		return view.Subscription{}, err
	}
	return s.mapper.MapDataToView(updated), nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	sid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, sid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	}
	return nil
}

// Same reports whether two subscription records denote the same
// subscription, regardless of their current levels or timestamps.
func (s *SubscriptionService) Same(a, b record.Subscription) bool {
	return s.mapper.MapDataToEntity(a).Equals(s.mapper.MapDataToEntity(b))
}

func (s *SubscriptionService) load(ctx context.Context, id string) (record.Subscription, error) {
	sid, err := parseID(id)
	if err != nil {
		return record.Subscription{}, err
	}
	rec, err := s.Repo.GetByID(ctx, sid)
	if errors.Is(err, repo.ErrNotFound) {
		return rec, ErrSubscriptionNotFound
	}
	return rec, err
}
