package metrics_test

import (
	"context"
	"testing"

	"yelpcamp/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("notifications.delivered")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	var found bool
	for _, f := range families {
		names = append(names, f.GetName())
		if f.GetName() == "notifications_delivered_total" {
			found = true
			require.InDelta(t, 2.0, f.GetMetric()[0].GetCounter().GetValue(), 1e-9)
		}
	}
	require.True(t, found, "gathered families: %v", names)
	require.NotContains(t, names, "notifications.delivered_total")
}

func TestDefaultBuckets_Sorted(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Less(t, metrics.DefaultBuckets[i-1], metrics.DefaultBuckets[i])
	}
}
