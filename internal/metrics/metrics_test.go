package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestJobCacheLookups(t *testing.T) {
	c := JobCacheLookups.WithLabelValues(CacheHit)
	before := counterValue(t, c)
	c.Inc()
	require.Equal(t, before+1, counterValue(t, c))
}

func TestHTTPRequestsTotal(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("GET", "/api/jobs", "200")
	before := counterValue(t, c)
	c.Inc()
	require.Equal(t, before+1, counterValue(t, c))
}

func TestRegistered(t *testing.T) {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["http_requests_total"])
	require.True(t, names["job_cache_lookups_total"])
	require.True(t, names["job_applications_created_total"])
}
