package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
)

// SessionKey is the redis hash holding an account's active session.
func SessionKey(accountID string) string { return "account:session:" + accountID }

// SessionStore keeps one session per account as a redis hash.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

var _ application.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) Save(ctx context.Context, sess application.Session, ttl time.Duration) error {
	key := SessionKey(sess.AccountID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"account_id": sess.AccountID,
		"email":      sess.Email,
		"scope":      sess.Scope,
		"sid":        sess.SID,
	})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Get(ctx context.Context, accountID string) (application.Session, bool, error) {
	data, err := s.rdb.HGetAll(ctx, SessionKey(accountID)).Result()
	if err != nil {
		return application.Session{}, false, err
	}
	if len(data) == 0 {
		return application.Session{}, false, nil
	}
	return application.Session{
		AccountID: data["account_id"],
		Email:     data["email"],
		Scope:     data["scope"],
		SID:       data["sid"],
	}, true, nil
}

func (s *SessionStore) Delete(ctx context.Context, accountID string) error {
	return s.rdb.Del(ctx, SessionKey(accountID)).Err()
}
