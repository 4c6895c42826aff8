package logger

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeydtaylor/steeze-router/pkg/middleware/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func captureAccess(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	zc, logs := observer.New(zap.InfoLevel)
	SetAccessLogger(zap.New(zc))
	return logs
}

func TestAccessLogRecordsRequest(t *testing.T) {
	logs := captureAccess(t)
	ca, err := auth.New(auth.Config{})
	require.NoError(t, err)

	var downstream string
	h := ProvideLoggerMiddleware().Middleware(ca)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		downstream = string(b)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))

	body := `{"url":"app://a"}`
	r := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, body, downstream)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(http.StatusAccepted), fields["status"])
	assert.Equal(t, int64(2), fields["responseSize"])
	assert.Equal(t, "/route", fields["uri"])
	assert.Equal(t, body, fields["requestData"])
	assert.Equal(t, false, fields["isAuthenticated"])
}

func TestAccessLogRedactsOtherBodies(t *testing.T) {
	logs := captureAccess(t)
	h := ProvideLoggerMiddleware().Middleware(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r := httptest.NewRequest(http.MethodPost, "/other", strings.NewReader(`{"secret":1}`))
	r.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), r)

	r = httptest.NewRequest(http.MethodGet, "/fetch?url=app://a", nil)
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.Equal(t, 2, logs.Len())
	_, logged := logs.All()[0].ContextMap()["requestData"]
	assert.False(t, logged)
	assert.Equal(t, "app://a", logs.All()[1].ContextMap()["target"])
}

func TestShouldLogBody(t *testing.T) {
	AddBodyLogPaths("/extra", " ")
	mk := func(method, path, ct string) *http.Request {
		r := httptest.NewRequest(method, path, nil)
		r.Header.Set("Content-Type", ct)
		return r
	}
	small := []byte(`{}`)

	assert.True(t, shouldLogBody(mk(http.MethodPost, "/route", "application/json"), small))
	assert.True(t, shouldLogBody(mk(http.MethodPut, "/extra", "application/json; charset=utf-8"), small))
	assert.False(t, shouldLogBody(mk(http.MethodGet, "/route", "application/json"), small))
	assert.False(t, shouldLogBody(mk(http.MethodPost, "/route", "text/plain"), small))
	assert.False(t, shouldLogBody(mk(http.MethodPost, "/route", "application/json"), nil))
	assert.False(t, shouldLogBody(mk(http.MethodPost, "/route", "application/json"), make([]byte, 1<<16+1)))
}

func TestNewLogWritesUnderLogDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_DIR", dir)

	l := NewLog("test.log")
	l.Info("hello")
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestAccessLogCarriesAnnotations(t *testing.T) {
	logs := captureAccess(t)
	h := ProvideLoggerMiddleware().Middleware(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		Annotate(r.Context(), zap.String("dispatchId", "d-1"), zap.String("module", "users"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fetch?url=app://users", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "d-1", fields["dispatchId"])
	assert.Equal(t, "users", fields["module"])
	// nothing written means an implicit 200
	assert.Equal(t, int64(http.StatusOK), fields["status"])

	assert.NotPanics(t, func() { Annotate(context.Background(), zap.String("k", "v")) })
}
