package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/mapper"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	repo "github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	Repo     repo.ProfileRepository
	Accounts repo.AccountRepository
	Index    ProfileIndex
	Avatars  AvatarStore
	Logger   *logrus.Logger

	mapper mapper.ProfileMapper
	now    func() time.Time
}

func NewProfileService(r repo.ProfileRepository, accounts repo.AccountRepository, index ProfileIndex, avatars AvatarStore, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Repo: r, Accounts: accounts, Index: index, Avatars: avatars, Logger: logger, now: time.Now}
}

type ProfileInput struct {
	Name     string
	Bio      string
	Document map[string]any
}

func (s *ProfileService) Create(ctx context.Context, accountID string, in ProfileInput) (view.Profile, error) {
	aid, err := parseID(accountID)
	if err != nil {
		return view.Profile{}, err
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return view.Profile{}, err
	}
	if s.Accounts != nil {
		if _, err := s.Accounts.GetByID(ctx, aid); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return view.Profile{}, ErrAccountNotFound
			}
			return view.Profile{}, err
		}
	}
	now := s.now().UTC()
	p := entity.NewProfile(valueobject.CreateIdentifier().Value(), entity.ProfileProps{
		IDAccount: aid,
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		Bio:       in.Bio,
		Document:  emptyDocument(in.Document),
	})
	rec := s.mapper.MapEntityToData(p)
	if err := s.Repo.Create(ctx, rec); err != nil {
		return view.Profile{}, err
	}
	v := s.mapper.MapDataToView(rec)
	s.index(ctx, v)
	return v, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (view.Profile, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Profile{}, err
	}
	return s.mapper.MapDataToView(rec), nil
}

func (s *ProfileService) ListByAccount(ctx context.Context, accountID string) ([]view.Profile, error) {
	aid, err := parseID(accountID)
	if err != nil {
		return nil, err
	}
	recs, err := s.Repo.ListByAccount(ctx, aid)
	if err != nil {
		return nil, err
	}
	out := make([]view.Profile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.mapper.MapDataToView(rec))
	}
	return out, nil
}

type UpdateProfileInput struct {
	Name     *string
	Bio      *string
	Document map[string]any
}

func (s *ProfileService) Update(ctx context.Context, id string, in UpdateProfileInput) (view.Profile, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Profile{}, err
	}
	current := s.mapper.MapDataToEntity(rec)
	p := current.Props()
	if in.Name != nil {
		name, err := requiredText("name", *in.Name)
		if err != nil {
			return view.Profile{}, err
		}
		p.Name = name
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Document != nil {
		p.Document = in.Document
	}
	p.UpdatedAt = s.now().UTC()
	return s.save(ctx, entity.NewProfile(current.ID(), p))
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, pid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if s.Index != nil {
		if err := s.Index.Remove(ctx, pid); err != nil {
			s.warn(err, pid, "profile unindex failed")
		}
	}
	return nil
}

// UploadAvatar stores the image under avatars/<profile>/ and points the
// profile at its public URL.
func (s *ProfileService) UploadAvatar(ctx context.Context, id, filename, contentType string, r io.Reader) (view.Profile, error) {
	if s.Avatars == nil {
		return view.Profile{}, ErrStorageUnavailable
	}
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Profile{}, err
	}
	object := fmt.Sprintf("avatars/%s/%s%s", rec.IDProfile, uuid.NewString(), strings.ToLower(path.Ext(filename)))
	url, err := s.Avatars.Upload(ctx, object, contentType, r)
	if err != nil {
		return view.Profile{}, err
	}
	current := s.mapper.MapDataToEntity(rec)
	p := current.Props()
	p.AvatarURL = url
	p.UpdatedAt = s.now().UTC()
	return s.save(ctx, entity.NewProfile(current.ID(), p))
}

// Search queries the profile index; an unconfigured index yields no hits.
func (s *ProfileService) Search(ctx context.Context, q string, size int) ([]view.Profile, error) {
	if s.Index == nil {
		return []view.Profile{}, nil
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return s.Index.Search(ctx, strings.TrimSpace(q), size)
}

func (s *ProfileService) save(ctx context.Context, p entity.Profile) (view.Profile, error) {
	rec := s.mapper.MapEntityToData(p)
	if err := s.Repo.Update(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Profile{}, ErrProfileNotFound
		}
		return view.Profile{}, err
	}
	v := s.mapper.MapDataToView(rec)
	s.index(ctx, v)
	return v, nil
}

func (s *ProfileService) load(ctx context.Context, id string) (record.Profile, error) {
	pid, err := parseID(id)
	if err != nil {
		return record.Profile{}, err
	}
	rec, err := s.Repo.GetByID(ctx, pid)
	if errors.Is(err, repo.ErrNotFound) {
		return rec, ErrProfileNotFound
	}
	return rec, err
}

func (s *ProfileService) index(ctx context.Context, v view.Profile) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, v); err != nil {
		s.warn(err, v.IDProfile, "profile index failed")
	}
}

func (s *ProfileService) warn(err error, id, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("profile_id", id).Warn(msg)
	}
}
