package application

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-resource-api/pkg/mailer"
	tpl "github.com/oksasatya/go-ddd-resource-api/pkg/mailer/templates"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
)

const (
	DefaultScope = "user"
	sessionTTL   = 24 * time.Hour
)

type AccountService struct {
	Repo      repo.AccountRepository
	JWT       *helpers.JWTManager
	Sessions  SessionStore
	Publisher Publisher
	Logger    *logrus.Logger

	mapper mapper.AccountMapper
	now    func() time.Time
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func NewAccountService(repo repo.AccountRepository, jwt *helpers.JWTManager, sessions SessionStore, pub Publisher, logger *logrus.Logger) *AccountService {
	return &AccountService{
		Repo:      repo,
		JWT:       jwt,
		Sessions:  sessions,
		Publisher: pub,
		Logger:    logger,
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type RegisterInput struct {
	Email    string
	Password string
	Document map[string]any
}

// Register creates an account with a fresh identifier and the default scope.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (view.Account, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return view.Account{}, err
	}
	now := s.now().UTC()
	acc := entity.NewAccount(valueobject.CreateIdentifier().Value(), entity.AccountProps{
		CreatedAt: now,
		UpdatedAt: now,
		Email:     normalizeEmail(in.Email),
		Password:  hash,
		Scope:     DefaultScope,
		Document:  emptyDocument(in.Document),
	})
	rec := s.mapper.MapEntityToData(acc)
	if err := s.Repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return view.Account{}, ErrEmailTaken
		}
		return view.Account{}, err
	}

	s.enqueue(ctx, mailer.EmailJob{
		To:       rec.Email,
		Template: tpl.AccountCreated,
		Data:     tpl.NewAccountCreatedData(rec.Email, tpl.WithTime(now)),
	})
	return s.mapper.MapDataToView(rec), nil
}

// Authenticate validates email/password and returns the account without issuing tokens.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (entity.Account, error) {
	rec, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repo.ErrNotFound) {
		return entity.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return entity.Account{}, fmt.Errorf("load account: %w", err)
	}
	if !helpers.PasswordMatches(rec.Password, password) {
		return entity.Account{}, ErrInvalidCredentials
	}
	if helpers.NeedsRehash(rec.Password) {
		s.rehash(ctx, rec, password)
	}
	return s.mapper.MapDataToEntity(rec), nil
}

// IssueTokens generates access/refresh tokens bound to a new session.
func (s *AccountService) IssueTokens(ctx context.Context, acc entity.Account) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.signPair(acc.ID(), sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", acc.ID()).Error("generate tokens failed")
		}
		return TokenPair{}, err
	}
	if s.Sessions != nil {
		p := acc.Props()
		sess := Session{AccountID: acc.ID(), Email: p.Email, Scope: p.Scope, SID: sid}
		if err := s.Sessions.Save(ctx, sess, sessionTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", acc.ID()).Warn("session save failed")
		}
	}
	return pair, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (view.Account, TokenPair, error) {
	acc, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return view.Account{}, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, acc)
	if err != nil {
		return view.Account{}, TokenPair{}, err
	}
	return s.mapper.MapDataToView(s.mapper.MapEntityToData(acc)), pair, nil
}

// Refresh rotates the session id and both tokens. The refresh token must
// belong to the account's current session.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	rec, err := s.Repo.GetByID(ctx, claims.AccountID)
	if errors.Is(err, repo.ErrNotFound) {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, "", fmt.Errorf("load account: %w", err)
	}
	var sess Session
	if s.Sessions != nil {
		cur, ok, sErr := s.Sessions.Get(ctx, rec.IDAccount)
		if sErr != nil {
			return TokenPair{}, "", fmt.Errorf("load session: %w", sErr)
		}
		if !ok || cur.SID != claims.SessionID {
			return TokenPair{}, "", ErrInvalidCredentials
		}
		sess = cur
	}
	sid := uuid.NewString()
	pair, err := s.signPair(rec.IDAccount, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	if s.Sessions != nil {
		sess.SID = sid
		if err := s.Sessions.Save(ctx, sess, sessionTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", rec.IDAccount).Warn("session rotate failed")
		}
	}
	return pair, rec.IDAccount, nil
}

func (s *AccountService) Logout(ctx context.Context, accountID string) error {
	if s.Sessions == nil {
		return nil
	}
	return s.Sessions.Delete(ctx, accountID)
}

func (s *AccountService) signPair(accountID, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(accountID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(accountID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (view.Account, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Account{}, err
	}
	return s.mapper.MapDataToView(rec), nil
}

type UpdateAccountInput struct {
	Email    *string
	Password *string
	Document map[string]any
}

func (s *AccountService) Update(ctx context.Context, id string, in UpdateAccountInput) (view.Account, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return view.Account{}, err
	}
	current := s.mapper.MapDataToEntity(rec)
	p := current.Props()

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		other, lookupErr := s.Repo.GetByEmail(ctx, email)
		switch {
		case lookupErr == nil && !s.mapper.MapDataToEntity(other).Equals(current):
			return view.Account{}, ErrEmailTaken
		case lookupErr != nil && !errors.Is(lookupErr, repo.ErrNotFound):
			return view.Account{}, lookupErr
		}
		p.Email = email
	}
	if in.Password != nil {
		hash, hErr := helpers.HashPassword(*in.Password)
		if hErr != nil {
			return view.Account{}, hErr
		}
		p.Password = hash
	}
	if in.Document != nil {
		p.Document = in.Document
	}
	p.UpdatedAt = s.now().UTC()

	updated := s.mapper.MapEntityToData(entity.NewAccount(current.ID(), p))
	if err := s.Repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return view.Account{}, ErrAccountNotFound
		}
		if errors.Is(err, repo.ErrConflict) {
			return view.Account{}, ErrEmailTaken
		}
		return view.Account{}, err
	}
	return s.mapper.MapDataToView(updated), nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	aid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, aid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	if s.Sessions != nil {
		if err := s.Sessions.Delete(ctx, aid); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", aid).Warn("session delete failed")
		}
	}
	return nil
}

func (s *AccountService) load(ctx context.Context, id string) (rec record.Account, err error) {
	aid, err := parseID(id)
	if err != nil {
		return rec, err
	}
	rec, err = s.Repo.GetByID(ctx, aid)
	if errors.Is(err, repo.ErrNotFound) {
		return rec, ErrAccountNotFound
	}
	return rec, err
}

func (s *AccountService) enqueue(ctx context.Context, job mailer.EmailJob) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("template", job.Template).Warn("failed to publish email job")
	}
}

// rehash upgrades a stored hash to the current work factor. Failures only log;
// the old hash still verifies.
func (s *AccountService) rehash(ctx context.Context, rec record.Account, password string) {
	hash, err := helpers.HashPassword(password)
	if err == nil {
		rec.Password = hash
		err = s.Repo.Update(ctx, rec)
	}
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("account_id", rec.IDAccount).Warn("password rehash failed")
	}
}
