package metrics_test

import (
	"context"
	"strings"
	"testing"

	"breachcheck/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("test.lookups")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "test_lookups") {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "counter not exported")
}

func TestDefaultBuckets_Sorted(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Less(t, metrics.DefaultBuckets[i-1], metrics.DefaultBuckets[i])
	}
}
