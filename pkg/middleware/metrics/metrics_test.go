package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDispatchObserverOutcomes(t *testing.T) {
	obs := DispatchObserver{}
	tests := []struct {
		module string
		err    error
		want   string
	}{
		{"users", nil, OutcomeResolved},
		{core.EmptyModule, nil, OutcomeFallback},
		{"a", &core.ResolveError{URL: "app://a/a", Err: core.ErrRoutingCycle}, OutcomeCycle},
		{"a", fmt.Errorf("wrapped: %w", core.ErrTooManyHops), OutcomeTooDeep},
		{"a", fmt.Errorf("other"), OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c := dispatchTotal.WithLabelValues("route", "observer-test", tt.module, tt.want)
			before := testutil.ToFloat64(c)
			obs.ObserveDispatch("route", "observer-test", tt.module, 1, tt.err)
			assert.Equal(t, before+1, testutil.ToFloat64(c))
		})
	}
}

func TestCollectRecordsRequests(t *testing.T) {
	AddMetricsSkipPaths("/ping")
	SetPathNormalizer(nil)

	h := Collect(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	c := totalHttpRequestsToUri.WithLabelValues("418", "/collect-test", http.MethodGet)
	before := testutil.ToFloat64(c)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/collect-test", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(c))

	skipped := totalHttpRequestsToUri.WithLabelValues("418", "/ping", http.MethodGet)
	before = testutil.ToFloat64(skipped)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, before, testutil.ToFloat64(skipped))
}

func TestCollectLabelsByRoutePattern(t *testing.T) {
	SetPathNormalizer(nil)
	r := chi.NewRouter()
	r.Use(Collect(nil))
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {})

	c := totalHttpRequestsToUri.WithLabelValues("200", "/items/{id}", http.MethodGet)
	before := testutil.ToFloat64(c)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/43", nil))
	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestPromHandlerExposesDispatchMetrics(t *testing.T) {
	DispatchObserver{}.ObserveDispatch("fetch", "expose-test", "m", 2, nil)

	w := httptest.NewRecorder()
	ProvideMetrics().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "steeze_router_dispatch_total"))
	assert.True(t, strings.Contains(body, "steeze_router_descent_hops"))
}
