package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestChiRouter(t *testing.T) {
	r := NewChi()
	var reqID string
	r.Get("/ping", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqID = chimw.GetReqID(req.Context())
		_, _ = w.Write([]byte("pong"))
	}))
	r.Post("/panic", http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	r.Mount("/metrics", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	do := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.Mux().ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	w := do(http.MethodGet, "/ping")
	assert.Equal(t, "pong", w.Body.String())
	assert.NotEmpty(t, reqID)

	assert.Equal(t, http.StatusInternalServerError, do(http.MethodPost, "/panic").Code)
	assert.Equal(t, http.StatusNoContent, do(http.MethodGet, "/metrics").Code)
	assert.Equal(t, http.StatusTeapot, do(http.MethodGet, "/nope").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(http.MethodPost, "/ping").Code)
}
