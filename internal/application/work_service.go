package application

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/mapper"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	repo "github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

var ErrWorkNotFound = errors.New("work not found")

type WorkService struct {
	Repo     repo.WorkRepository
	Profiles repo.ProfileRepository

	mapper mapper.WorkMapper
	now    func() time.Time
}

func NewWorkService(r repo.WorkRepository, profiles repo.ProfileRepository) *WorkService {
	return &WorkService{Repo: r, Profiles: profiles, now: time.Now}
}

type WorkInput struct {
	Title       string
	Description string
	Tags        []string
}

// normalizeTags allows an empty tag list; anything else must be a valid
// string set.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return []string{}, nil
	}
	scope, err := valueobject.InsertStringSetScope(tags)
	if err != nil {
		return nil, err
	}
	return scope.Value(), nil
}

func (s *WorkService) Create(ctx context.Context, profileID string, in WorkInput) (view.Work, error) {
	pid, err := parseID(profileID)
	if err != nil {
		return view.Work{}, err
	}
	title, err := requiredText("title", in.Title)
	if err != nil {
		return view.Work{}, err
	}
	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return view.Work{}, err
	}
	if s.Profiles != nil {
		if _, err := s.Profiles.GetByID(ctx, pid); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return view.Work{}, ErrProfileNotFound
			}
			return view.Work{}, err
		}
	}
	now := s.now().UTC()
	w := entity.NewWork(valueobject.CreateIdentifier().Value(), entity.WorkProps{
		IDProfile:   pid,
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: in.Description,
		Tags:        tags,
	})
	rec := s.mapper.MapEntityToData(w)
	if err := s.Repo.Create(ctx, rec); err != nil {
		return view.Work{}, err
	}
	return s.mapper.MapDataToView(rec), nil
}

func (s *WorkService) Get(ctx context.Context, id string) (view.Work, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Work{}, err
	}
	return s.mapper.MapDataToView(rec), nil
}

func (s *WorkService) ListByProfile(ctx context.Context, profileID string) ([]view.Work, error) {
	pid, err := parseID(profileID)
	if err != nil {
		return nil, err
	}
	recs, err := s.Repo.ListByProfile(ctx, pid)
	if err != nil {
		return nil, err
	}
	out := make([]view.Work, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.mapper.MapDataToView(rec))
	}
	return out, nil
}

type UpdateWorkInput struct {
	Title       *string
	Description *string
	Tags        *[]string
}

func (s *WorkService) Update(ctx context.Context, id string, in UpdateWorkInput) (view.Work, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Work{}, err
	}
	current := s.mapper.MapDataToEntity(rec)
	p := current.Props()
	if in.Title != nil {
		title, err := requiredText("title", *in.Title)
		if err != nil {
			return view.Work{}, err
		}
		p.Title = title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Tags != nil {
		tags, tErr := normalizeTags(*in.Tags)
		if tErr != nil {
			return view.Work{}, tErr
		}
		p.Tags = tags
	}
	p.UpdatedAt = s.now().UTC()

	updated := s.mapper.MapEntityToData(entity.NewWork(current.ID(), p))
	if err := s.Repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Work{}, ErrWorkNotFound
		}
		return view.Work{}, err
	}
	return s.mapper.MapDataToView(updated), nil
}

func (s *WorkService) Delete(ctx context.Context, id string) error {
	wid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, wid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrWorkNotFound
		}
		return err
	}
	return nil
}

func (s *WorkService) load(ctx context.Context, id string) (record.Work, error) {
	wid, err := parseID(id)
	if err != nil {
		return record.Work{}, err
	}
	rec, err := s.Repo.GetByID(ctx, wid)
	if errors.Is(err, repo.ErrNotFound) {
		return rec, ErrWorkNotFound
	}
	return rec, err
}
