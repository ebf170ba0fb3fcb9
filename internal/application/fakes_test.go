package application

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	repo "github.com/oksasatya/go-ddd-resource-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// memStore is an in-memory table keyed by primary id, listing in creation order.
type memStore[R any] struct {
	mu    sync.Mutex
	rows  map[string]R
	order []string
	key   func(R) string
}

func newMemStore[R any](key func(R) string) *memStore[R] {
	return &memStore[R]{rows: map[string]R{}, key: key}
}

func (m *memStore[R]) Create(_ context.Context, rec R) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.key(rec)
	if _, ok := m.rows[id]; ok {
		return repo.ErrConflict
	}
	m.rows[id] = rec
	m.order = append(m.order, id)
	return nil
}

func (m *memStore[R]) GetByID(_ context.Context, id string) (R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.rows[id]
	if !ok {
		var zero R
		return zero, repo.ErrNotFound
	}
	return rec, nil
}

func (m *memStore[R]) Update(_ context.Context, rec R) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.key(rec)
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	m.rows[id] = rec
	return nil
}

func (m *memStore[R]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore[R]) filter(keep func(R) bool) []R {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []R{}
	for _, id := range m.order {
		if rec := m.rows[id]; keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (m *memStore[R]) find(match func(R) bool) (R, error) {
	if rows := m.filter(match); len(rows) > 0 {
		return rows[0], nil
	}
	var zero R
	return zero, repo.ErrNotFound
}

type fakeAccounts struct{ *memStore[record.Account] }

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{newMemStore(func(r record.Account) string { return r.IDAccount })}
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (record.Account, error) {
	return f.find(func(r record.Account) bool { return r.Email == email })
}

func (f *fakeAccounts) Create(ctx context.Context, rec record.Account) error {
	if _, err := f.GetByEmail(ctx, rec.Email); err == nil {
		return repo.ErrConflict
	}
	return f.memStore.Create(ctx, rec)
}

type fakeProfiles struct{ *memStore[record.Profile] }

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{newMemStore(func(r record.Profile) string { return r.IDProfile })}
}

func (f *fakeProfiles) ListByAccount(_ context.Context, accountID string) ([]record.Profile, error) {
	return f.filter(func(r record.Profile) bool { return r.IDAccount == accountID }), nil
}

type fakeFeatures struct{ *memStore[record.Feature] }

func newFakeFeatures() *fakeFeatures {
	return &fakeFeatures{newMemStore(func(r record.Feature) string { return r.IDFeature })}
}

func (f *fakeFeatures) GetByName(_ context.Context, name string) (record.Feature, error) {
	return f.find(func(r record.Feature) bool { return r.Name == name })
}

func (f *fakeFeatures) List(_ context.Context) ([]record.Feature, error) {
	return f.filter(func(record.Feature) bool { return true }), nil
}

type fakeSubscriptions struct{ *memStore[record.Subscription] }

func newFakeSubscriptions() *fakeSubscriptions {
	return &fakeSubscriptions{newMemStore(func(r record.Subscription) string { return r.IDSubscription })}
}

func (f *fakeSubscriptions) Create(ctx context.Context, rec record.Subscription) error {
	dup := f.filter(func(r record.Subscription) bool {
		return r.IDAccount == rec.IDAccount && r.IDFeature == rec.IDFeature
	})
	if len(dup) > 0 {
		return repo.ErrConflict
	}
	return f.memStore.Create(ctx, rec)
}

func (f *fakeSubscriptions) ListByAccount(_ context.Context, accountID string) ([]record.Subscription, error) {
	return f.filter(func(r record.Subscription) bool { return r.IDAccount == accountID }), nil
}

type fakeWorks struct{ *memStore[record.Work] }

func newFakeWorks() *fakeWorks {
	return &fakeWorks{newMemStore(func(r record.Work) string { return r.IDWork })}
}

func (f *fakeWorks) ListByProfile(_ context.Context, profileID string) ([]record.Work, error) {
	return f.filter(func(r record.Work) bool { return r.IDProfile == profileID }), nil
}

type fakePublisher struct {
	mu   sync.Mutex
	jobs []any
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, body)
	return nil
}

type fakeSessions struct {
	mu   sync.Mutex
	byID map[string]Session
}

func newFakeSessions() *fakeSessions { return &fakeSessions{byID: map[string]Session{}} }

func (f *fakeSessions) Save(_ context.Context, s Session, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.AccountID] = s
	return nil
}

func (f *fakeSessions) Get(_ context.Context, accountID string) (Session, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[accountID]
	return s, ok, nil
}

func (f *fakeSessions) Delete(_ context.Context, accountID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, accountID)
	return nil
}

type fakeFeatureCache struct {
	views       map[string]view.Feature
	list        []view.Feature
	hasList     bool
	invalidated []string
}

func newFakeFeatureCache() *fakeFeatureCache {
	return &fakeFeatureCache{views: map[string]view.Feature{}}
}

func (c *fakeFeatureCache) GetFeature(_ context.Context, id string) (view.Feature, bool, error) {
	v, ok := c.views[id]
	return v, ok, nil
}

func (c *fakeFeatureCache) SetFeature(_ context.Context, v view.Feature) error {
	c.views[v.IDFeature] = v
	return nil
}

func (c *fakeFeatureCache) GetList(context.Context) ([]view.Feature, bool, error) {
	return c.list, c.hasList, nil
}

func (c *fakeFeatureCache) SetList(_ context.Context, vs []view.Feature) error {
	c.list, c.hasList = vs, true
	return nil
}

func (c *fakeFeatureCache) Invalidate(_ context.Context, ids ...string) error {
	c.list, c.hasList = nil, false
	for _, id := range ids {
		delete(c.views, id)
	}
	c.invalidated = append(c.invalidated, ids...)
	return nil
}

type fakeIndex struct {
	docs map[string]view.Profile
}

func newFakeIndex() *fakeIndex { return &fakeIndex{docs: map[string]view.Profile{}} }

func (i *fakeIndex) Index(_ context.Context, v view.Profile) error {
	i.docs[v.IDProfile] = v
	return nil
}

func (i *fakeIndex) Remove(_ context.Context, id string) error {
	delete(i.docs, id)
	return nil
}

func (i *fakeIndex) Search(_ context.Context, q string, size int) ([]view.Profile, error) {
	out := []view.Profile{}
	for _, v := range i.docs {
		if v.Name == q {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].IDProfile < out[b].IDProfile })
	if len(out) > size {
		out = out[:size]
	}
	return out, nil
}

type fakeAvatars struct {
	objects map[string][]byte
}

func (f *fakeAvatars) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectPath] = b
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}
