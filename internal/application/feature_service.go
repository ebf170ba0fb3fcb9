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
)

var (
	ErrFeatureNotFound = errors.New("feature not found")
	ErrFeatureNameUsed = errors.New("feature name already used")
)

type FeatureService struct {
	Repo   repo.FeatureRepository
	Cache  FeatureCache
	Logger *logrus.Logger

	mapper mapper.FeatureMapper
	now    func() time.Time
}

func NewFeatureService(r repo.FeatureRepository, cache FeatureCache, logger *logrus.Logger) *FeatureService {
	return &FeatureService{Repo: r, Cache: cache, Logger: logger, now: time.Now}
}

// FeatureInput carries client input; Scope is validated as a string set.
type FeatureInput struct {
	Name        string
	Description string
	Scope       any
}

func (s *FeatureService) Create(ctx context.Context, in FeatureInput) (view.Feature, error) {
	scope, err := valueobject.InsertStringSetScope(in.Scope)
	if err != nil {
		return view.Feature{}, err
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return view.Feature{}, err
	}
	if _, err := s.Repo.GetByName(ctx, name); err == nil {
		return view.Feature{}, ErrFeatureNameUsed
	} else if !errors.Is(err, repo.ErrNotFound) {
		return view.Feature{}, err
	}
	now := s.now().UTC()
	f := entity.NewFeature(valueobject.CreateIdentifier().Value(), entity.FeatureProps{
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Description: in.Description,
		Scope:       scope.Value(),
	})
	rec := s.mapper.MapEntityToData(f)
	if err := s.Repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return view.Feature{}, ErrFeatureNameUsed
		}
		return view.Feature{}, err
	}
	s.invalidate(ctx)
	return s.mapper.MapDataToView(rec), nil
}

// Get serves from cache when possible and fills it on a miss.
func (s *FeatureService) Get(ctx context.Context, id string) (view.Feature, error) {
	fid, err := parseID(id)
	if err != nil {
		return view.Feature{}, err
	}
	if s.Cache != nil {
		if v, ok, cErr := s.Cache.GetFeature(ctx, fid); cErr == nil && ok {
			return v, nil
		} else if cErr != nil {
			s.warn(cErr, "feature cache read failed")
		}
	}
	rec, err := s.Repo.GetByID(ctx, fid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Feature{}, ErrFeatureNotFound
		}
		return view.Feature{}, err
	}
	v := s.mapper.MapDataToView(rec)
	if s.Cache != nil {
		if err := s.Cache.SetFeature(ctx, v); err != nil {
			s.warn(err, "feature cache write failed")
		}
	}
	return v, nil
}

func (s *FeatureService) List(ctx context.Context) ([]view.Feature, error) {
	if s.Cache != nil {
		if vs, ok, cErr := s.Cache.GetList(ctx); cErr == nil && ok {
			return vs, nil
		} else if cErr != nil {
			s.warn(cErr, "feature cache read failed")
		}
	}
	recs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]view.Feature, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.mapper.MapDataToView(rec))
	}
	if s.Cache != nil {
		if err := s.Cache.SetList(ctx, out); err != nil {
			s.warn(err, "feature cache write failed")
		}
	}
	return out, nil
}

type UpdateFeatureInput struct {
	Name        *string
	Description *string
	Scope       any
}

func (s *FeatureService) Update(ctx context.Context, id string, in UpdateFeatureInput) (view.Feature, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Feature{}, err
	}
	current := s.mapper.MapDataToEntity(rec)
	p := current.Props()
	if in.Name != nil {
		name, err := requiredText("name", *in.Name)
		if err != nil {
			return view.Feature{}, err
		}
		if other, lookupErr := s.Repo.GetByName(ctx, name); lookupErr == nil {
			if !s.mapper.MapDataToEntity(other).Equals(current) {
				return view.Feature{}, ErrFeatureNameUsed
			}
		} else if !errors.Is(lookupErr, repo.ErrNotFound) {
			return view.Feature{}, lookupErr
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Scope != nil {
		scope, sErr := valueobject.InsertStringSetScope(in.Scope)
		if sErr != nil {
			return view.Feature{}, sErr
		}
		p.Scope = scope.Value()
	}
	p.UpdatedAt = s.now().UTC()
	return s.save(ctx, entity.NewFeature(current.ID(), p))
}

func (s *FeatureService) Delete(ctx context.Context, id string) error {
	fid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, fid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrFeatureNotFound
		}
		return err
	}
	s.invalidate(ctx, fid)
	return nil
}

// Seed upserts catalog entries by name and reports how many were created
// and updated.
func (s *FeatureService) Seed(ctx context.Context, seeds []FeatureInput) (created, updated int, err error) {
	for _, in := range seeds {
		scope, sErr := valueobject.InsertStringSetScope(in.Scope)
		if sErr != nil {
			return created, updated, sErr
		}
		name, nErr := requiredText("name", in.Name)
		if nErr != nil {
			return created, updated, nErr
		}
		existing, lookupErr := s.Repo.GetByName(ctx, name)
		switch {
		case lookupErr == nil:
			current := s.mapper.MapDataToEntity(existing)
			p := current.Props()
			p.Description = in.Description
			p.Scope = scope.Value()
			p.UpdatedAt = s.now().UTC()
			if _, err := s.save(ctx, entity.NewFeature(current.ID(), p)); err != nil {
				return created, updated, err
			}
			updated++
		case errors.Is(lookupErr, repo.ErrNotFound):
			if _, err := s.Create(ctx, FeatureInput{Name: name, Description: in.Description, Scope: scope.Value()}); err != nil {
				return created, updated, err
			}
			created++
		default:
			return created, updated, lookupErr
		}
	}
	return created, updated, nil
}

func (s *FeatureService) save(ctx context.Context, f entity.Feature) (view.Feature, error) {
	rec := s.mapper.MapEntityToData(f)
	if err := s.Repo.Update(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Feature{}, ErrFeatureNotFound
		}
		if errors.Is(err, repo.ErrConflict) {
			return view.Feature{}, ErrFeatureNameUsed
		}
		return view.Feature{}, err
	}
	s.invalidate(ctx, rec.IDFeature)
	return s.mapper.MapDataToView(rec), nil
}

func (s *FeatureService) load(ctx context.Context, id string) (record.Feature, error) {
	fid, err := parseID(id)
	if err != nil {
		return record.Feature{}, err
	}
	rec, err := s.Repo.GetByID(ctx, fid)
	if errors.Is(err, repo.ErrNotFound) {
		return rec, ErrFeatureNotFound
	}
	return rec, err
}

// invalidate drops the list entry plus any given feature entries.
func (s *FeatureService) invalidate(ctx context.Context, ids ...string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, ids...); err != nil {
		s.warn(err, "feature cache invalidate failed")
	}
}

func (s *FeatureService) warn(err error, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).Warn(msg)
	}
}
