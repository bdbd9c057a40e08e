package resultcache_test

import (
	"context"
	"testing"
	"time"

	"breachcheck/pkg/domain"
	"breachcheck/pkg/kvstore/memory"
	"breachcheck/pkg/resultcache"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := resultcache.New(memory.New(memory.WithClock(clock)), 10*time.Minute)
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "email:a@x.com")
	require.NoError(t, err)
	require.False(t, hit)

	id := domain.SearchRequestID(uuid.New())
	v := &domain.Verification{
		RequestID:       id,
		SourceRequestID: id,
		BreachCount:     2,
		RiskLevel:       domain.RiskLevelHigh,
		RiskScore:       54,
		Results: []domain.BreachResult{{
			RequestID:      id,
			BreachName:     "BreachA",
			AffectedEmails: []string{"a@x.com"},
			Severity:       domain.SeverityMedium,
		}},
	}
	require.NoError(t, c.Put(ctx, "email:a@x.com", v))

	got, hit, err := c.Get(ctx, "email:a@x.com")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, id, got.SourceRequestID)
	require.Equal(t, 2, got.BreachCount)
	require.Equal(t, domain.RiskLevelHigh, got.RiskLevel)
	require.Equal(t, "BreachA", got.Results[0].BreachName)
	require.Nil(t, got.Results[0].BreachDate)

	clock.Advance(10*time.Minute - time.Second)
	_, hit, err = c.Get(ctx, "email:a@x.com")
	require.NoError(t, err)
	require.True(t, hit)

	clock.Advance(time.Second)
	_, hit, err = c.Get(ctx, "email:a@x.com")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestCache_CorruptValue(t *testing.T) {
	store := memory.New()
	c := resultcache.New(store, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cache:domain:x.com", []byte("{not json"), time.Minute))

	_, hit, err := c.Get(ctx, "domain:x.com")
	require.Error(t, err)
	require.False(t, hit)
}
