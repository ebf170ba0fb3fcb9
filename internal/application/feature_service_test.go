package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

func newFeatureFixture() (*FeatureService, *fakeFeatures, *fakeFeatureCache) {
	repo := newFakeFeatures()
	cache := newFakeFeatureCache()
	svc := NewFeatureService(repo, cache, nil)
	svc.now = clock
	return svc, repo, cache
}

func TestFeatureService_CreateValidatesScope(t *testing.T) {
	svc, _, _ := newFeatureFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		scope any
		kind  shared.ErrorKind
		want  []string
	}{
		{name: "normalized", scope: []any{" read ", "write", "read"}, want: []string{"read", "write"}},
		{name: "not an array", scope: "read", kind: shared.KindInvalidFormat},
		{name: "mixed types", scope: []any{"read", 1}, kind: shared.KindInvalidFormat},
		{name: "only blanks", scope: []string{" ", ""}, kind: shared.KindRequiredValueMissing},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := svc.Create(ctx, FeatureInput{Name: tt.name + string(rune('a'+i)), Scope: tt.scope})
			if tt.kind != "" {
				assert.True(t, shared.IsKind(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Scope)
		})
	}
}

func TestFeatureService_NameConflicts(t *testing.T) {
	svc, _, _ := newFeatureFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, FeatureInput{Name: "export", Scope: []string{"read"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, FeatureInput{Name: " export ", Scope: []string{"read"}})
	assert.ErrorIs(t, err, ErrFeatureNameUsed)

	b, err := svc.Create(ctx, FeatureInput{Name: "import", Scope: []string{"write"}})
	require.NoError(t, err)

	name := "export"
	_, err = svc.Update(ctx, b.IDFeature, UpdateFeatureInput{Name: &name})
	assert.ErrorIs(t, err, ErrFeatureNameUsed)

	// renaming to its own name is fine
	desc := "csv export"
	v, err := svc.Update(ctx, a.IDFeature, UpdateFeatureInput{Name: &name, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "csv export", v.Description)
	assert.Equal(t, []string{"read"}, v.Scope)
}

func TestFeatureService_Cache(t *testing.T) {
	svc, repo, cache := newFeatureFixture()
	ctx := context.Background()

	f, err := svc.Create(ctx, FeatureInput{Name: "export", Scope: []string{"read"}})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, cache.hasList)

	got, err := svc.Get(ctx, f.IDFeature)
	require.NoError(t, err)
	assert.Equal(t, f, got)
	assert.Contains(t, cache.views, f.IDFeature)

	// served from cache even when the row is gone behind the service's back
	require.NoError(t, repo.Delete(ctx, f.IDFeature))
	got, err = svc.Get(ctx, f.IDFeature)
	require.NoError(t, err)
	assert.Equal(t, f.IDFeature, got.IDFeature)

	require.NoError(t, repo.Create(ctx, f))
	require.NoError(t, svc.Delete(ctx, f.IDFeature))
	assert.False(t, cache.hasList)
	assert.NotContains(t, cache.views, f.IDFeature)
	assert.Contains(t, cache.invalidated, f.IDFeature)

	_, err = svc.Get(ctx, f.IDFeature)
	assert.ErrorIs(t, err, ErrFeatureNotFound)
}

func TestFeatureService_Seed(t *testing.T) {
	svc, _, _ := newFeatureFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, FeatureInput{Name: "export", Description: "old", Scope: []string{"read"}})
	require.NoError(t, err)

	created, updated, err := svc.Seed(ctx, []FeatureInput{
		{Name: "export", Description: "new", Scope: []string{"read", "write"}},
		{Name: "sharing", Description: "share works", Scope: []any{"share"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Description)
	assert.Equal(t, []string{"read", "write"}, list[0].Scope)
	assert.Equal(t, "sharing", list[1].Name)

	_, _, err = svc.Seed(ctx, []FeatureInput{{Name: "broken", Scope: "nope"}})
	assert.True(t, shared.IsKind(err, shared.KindInvalidFormat))
}

func TestFeatureService_BlankName(t *testing.T) {
	svc, repo, _ := newFeatureFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, FeatureInput{Name: " \t ", Scope: []string{"read"}})
	assert.True(t, shared.IsKind(err, shared.KindRequiredValueMissing), "got %v", err)
	_, err = repo.GetByName(ctx, "")
	assert.Error(t, err)

	f, err := svc.Create(ctx, FeatureInput{Name: "export", Scope: []string{"read"}})
	require.NoError(t, err)
	blank := "  "
	_, err = svc.Update(ctx, f.IDFeature, UpdateFeatureInput{Name: &blank})
	assert.True(t, shared.IsKind(err, shared.KindRequiredValueMissing), "got %v", err)

	_, _, err = svc.Seed(ctx, []FeatureInput{{Name: "", Scope: []string{"read"}}})
	assert.True(t, shared.IsKind(err, shared.KindRequiredValueMissing), "got %v", err)
}
