package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/record"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/pkg/mailer"
	tpl "github.com/oksasatya/go-ddd-resource-api/pkg/mailer/templates"
)

const featureID = "6ba7b810-9dad-41d1-80b4-00c04fd430c8"

func newSubscriptionFixture(t *testing.T) (*SubscriptionService, *fakeSubscriptions, *fakePublisher) {
	t.Helper()
	ctx := context.Background()
	accounts := newFakeAccounts()
	require.NoError(t, accounts.Create(ctx, record.Account{IDAccount: accountID, Email: "ada@example.com"}))
	features := newFakeFeatures()
	require.NoError(t, features.Create(ctx, record.Feature{IDFeature: featureID, Name: "export", Scope: []string{"read"}}))

	subs := newFakeSubscriptions()
	pub := &fakePublisher{}
	svc := NewSubscriptionService(subs, accounts, features, pub, nil)
	svc.now = clock
	return svc, subs, pub
}

func TestSubscriptionService_Create(t *testing.T) {
	svc, _, pub := newSubscriptionFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		accountID string
		featureID string
		level     float64
		wantErr   error
		kind      shared.ErrorKind
	}{
		{name: "negative level", accountID: accountID, featureID: featureID, level: -1, kind: shared.KindInvalidValue},
		{name: "bad feature id", accountID: accountID, featureID: "export", level: 1, kind: shared.KindInvalidFormat},
		{name: "unknown feature", accountID: accountID, featureID: "a8098c1a-f86e-41da-bd1a-00c04fd430c8", level: 1, wantErr: ErrFeatureNotFound},
		{name: "unknown account", accountID: "a8098c1a-f86e-41da-bd1a-00c04fd430c8", featureID: featureID, level: 1, wantErr: ErrAccountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.accountID, tt.featureID, tt.level)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.kind != "" {
				assert.True(t, shared.IsKind(err, tt.kind))
			}
		})
	}
	assert.Empty(t, pub.jobs)

	v, err := svc.Create(ctx, accountID, featureID, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(0), v.Level)
	assert.Equal(t, fixedNow, v.CreatedAt)

	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0].(mailer.EmailJob)
	assert.Equal(t, tpl.SubscriptionStarted, job.Template)
	assert.Equal(t, "export", job.Data["FeatureName"])

	_, err = svc.Create(ctx, accountID, featureID, 3)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscriptionService_UpdateLevel(t *testing.T) {
	svc, _, _ := newSubscriptionFixture(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, accountID, featureID, 2)
	require.NoError(t, err)

	svc.now = func() time.Time { return fixedNow.Add(time.Minute) }

	same, err := svc.UpdateLevel(ctx, v.IDSubscription, 2)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, same.UpdatedAt)

	raised, err := svc.UpdateLevel(ctx, v.IDSubscription, 5.5)
	require.NoError(t, err)
	assert.Equal(t, 5.5, raised.Level)
	assert.Equal(t, fixedNow.Add(time.Minute), raised.UpdatedAt)

	_, err = svc.UpdateLevel(ctx, v.IDSubscription, -0.5)
	assert.True(t, shared.IsKind(err, shared.KindInvalidValue))

	list, err := svc.ListByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5.5, list[0].Level)
	assert.True(t, svc.Same(v, list[0]))
}

func TestSubscriptionService_SameAndDelete(t *testing.T) {
	svc, _, _ := newSubscriptionFixture(t)
	ctx := context.Background()

	a := record.Subscription{IDSubscription: "s1", Level: 1}
	b := record.Subscription{IDSubscription: "s1", Level: 9, IDFeature: "other"}
	c := record.Subscription{IDSubscription: "s2", Level: 1}
	assert.True(t, svc.Same(a, b))
	assert.False(t, svc.Same(a, c))

	v, err := svc.Create(ctx, accountID, featureID, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, v.IDSubscription))
	_, err = svc.Get(ctx, v.IDSubscription)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, v.IDSubscription), ErrSubscriptionNotFound)
}
