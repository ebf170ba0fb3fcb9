package mapper

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
)

var (
	t1 = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	t2 = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
)

func sampleAccount() record.Account {
	return record.Account{
		IDAccount: "u1",
		CreatedAt: t1,
		UpdatedAt: t2,
		Email:     "a@b.com",
		Password:  "x",
		Scope:     "user",
		Document:  map[string]any{},
	}
}

func TestAccountMapper_RoundTrip(t *testing.T) {
	m := AccountMapper{}
	rec := sampleAccount()

	ent := m.MapDataToEntity(rec)
	assert.Equal(t, "u1", ent.ID())
	assert.Equal(t, "a@b.com", ent.Props().Email)

	assert.Equal(t, rec, m.MapEntityToData(ent))
}

func TestAccountMapper_ViewHasNoPassword(t *testing.T) {
	v := AccountMapper{}.MapDataToView(sampleAccount())

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(b, &keys))
	assert.NotContains(t, keys, "password")
	assert.Equal(t, "u1", keys["id_account"])
	assert.Equal(t, "a@b.com", keys["email"])
}

func TestAccountMapper_OutputsAreIndependent(t *testing.T) {
	m := AccountMapper{}
	rec := sampleAccount()
	rec.Document = map[string]any{"nested": map[string]any{"k": "v"}, "list": []any{"a"}}

	ent := m.MapDataToEntity(rec)
	ent.Props().Document["nested"].(map[string]any)["k"] = "changed"
	assert.Equal(t, "v", ent.Props().Document["nested"].(map[string]any)["k"])

	rec.Document["list"].([]any)[0] = "edited"
	assert.Equal(t, "a", ent.Props().Document["list"].([]any)[0])
	rec.Document["list"].([]any)[0] = "a"

	back := m.MapEntityToData(ent)
	back.Document["list"].([]any)[0] = "changed"

	v := m.MapDataToView(rec)
	v.Document["extra"] = true

	assert.Equal(t, "v", rec.Document["nested"].(map[string]any)["k"])
	assert.Equal(t, "a", rec.Document["list"].([]any)[0])
	assert.NotContains(t, rec.Document, "extra")
}

func TestAccountMapper_EqualityThroughEntities(t *testing.T) {
	m := AccountMapper{}
	a := sampleAccount()
	b := sampleAccount()
	b.Email = "other@b.com"

	assert.True(t, m.MapDataToEntity(a).Equals(m.MapDataToEntity(b)))

	b.IDAccount = "u2"
	assert.False(t, m.MapDataToEntity(a).Equals(m.MapDataToEntity(b)))
}

func TestProfileMapper(t *testing.T) {
	m := ProfileMapper{}
	rec := record.Profile{
		IDProfile: "p1",
		IDAccount: "u1",
		CreatedAt: t1,
		UpdatedAt: t2,
		Name:      "Ada",
		Bio:       "engineer",
		Document:  map[string]any{"links": []any{"https://example.com"}},
	}

	assert.Equal(t, rec, m.MapEntityToData(m.MapDataToEntity(rec)))

	v := m.MapDataToView(rec)
	assert.False(t, v.HasAvatar)
	assert.Equal(t, rec.Name, v.Name)

	rec.AvatarURL = "https://storage.googleapis.com/b/avatars/p1.png"
	assert.True(t, m.MapDataToView(rec).HasAvatar)
}

func TestSubscriptionMapper(t *testing.T) {
	m := SubscriptionMapper{}
	rec := record.Subscription{
		IDSubscription: "s1",
		IDAccount:      "u1",
		IDFeature:      "f1",
		CreatedAt:      t1,
		UpdatedAt:      t2,
		Level:          2,
	}

	ent := m.MapDataToEntity(rec)
	assert.Equal(t, float64(2), ent.Props().Level.Value())
	assert.Equal(t, rec, m.MapEntityToData(ent))
	assert.Equal(t, rec, m.MapDataToView(rec))

	// stored values bypass the range check
	rec.Level = -1
	assert.Equal(t, float64(-1), m.MapDataToEntity(rec).Props().Level.Value())
}

func TestFeatureMapper(t *testing.T) {
	m := FeatureMapper{}
	rec := record.Feature{
		IDFeature:   "f1",
		CreatedAt:   t1,
		UpdatedAt:   t2,
		Name:        "export",
		Description: "CSV export",
		Scope:       []string{"user", "admin"},
	}

	assert.Equal(t, rec, m.MapEntityToData(m.MapDataToEntity(rec)))

	v := m.MapDataToView(rec)
	assert.Equal(t, rec, v)
	v.Scope[0] = "changed"
	assert.Equal(t, "user", rec.Scope[0])
}

func TestWorkMapper(t *testing.T) {
	m := WorkMapper{}
	rec := record.Work{
		IDWork:      "w1",
		IDProfile:   "p1",
		CreatedAt:   t1,
		UpdatedAt:   t2,
		Title:       "Bridge",
		Description: "A bridge",
		Tags:        []string{"steel"},
	}

	ent := m.MapDataToEntity(rec)
	assert.True(t, ent.Equals(entity.NewWork("w1", entity.WorkProps{})))
	assert.Equal(t, rec, m.MapEntityToData(ent))

	v := m.MapDataToView(rec)
	v.Tags[0] = "changed"
	assert.Equal(t, "steel", rec.Tags[0])
}
