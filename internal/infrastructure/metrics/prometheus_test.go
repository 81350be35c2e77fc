package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/metrics"
)

func TestObserveLookup_ContaPorResultado(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveLookup(ports.LookupKindCNPJ, "receitaws", ports.OutcomeUnavailable, 120*time.Millisecond)
	r.ObserveLookup(ports.LookupKindCNPJ, "brasilapi", ports.OutcomeFound, 80*time.Millisecond)
	r.ObserveLookup(ports.LookupKindCNPJ, "brasilapi", ports.OutcomeFound, 90*time.Millisecond)

	count, err := testutil.GatherAndCount(r.Gatherer(), metrics.MetricLookupAttemptsTotal)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "uma série por combinação de rótulos")
}

func TestHandler_ExpoeMetricas(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveRequest(http.MethodGet, "/health", "200", time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), metrics.MetricHTTPRequestsTotal)
	assert.Contains(t, string(body), `route="/health"`)
}
