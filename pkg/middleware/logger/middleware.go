package logger

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-router/pkg/middleware/auth"
	"go.uber.org/zap"
)

// Middleware writes one "access" line per request. Handlers add
// dispatch details with Annotate.
func (m *Middleware) Middleware(ca *auth.Middleware) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := drainBody(r)
			ctx, notes := withAnnotations(r.Context())
			r = r.WithContext(ctx)
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := append(callerFields(ca, r.Context()),
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", httpScheme(r)),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.String("target", r.URL.Query().Get("url")),
					zap.Duration("lat", time.Since(start)),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", status),
				)
				fields = append(fields, notes.snapshot()...)
				// bodies are redacted unless allowlisted
				if shouldLogBody(r, body) {
					fields = append(fields, zap.ByteString("requestData", body))
				}
				accessLogger().Info("access", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// drainBody reads the request body and replaces it for downstream handlers.
func drainBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	b, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		b = nil
	}
	r.Body = io.NopCloser(bytes.NewReader(b))
	return b
}

func httpScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func callerFields(ca *auth.Middleware, ctx context.Context) []zap.Field {
	var u auth.User
	if ca != nil {
		u = ca.GetUser(ctx)
	}
	return []zap.Field{
		zap.Bool("isAuthenticated", u.Username != ""),
		zap.String("username", u.Username),
		zap.String("role", u.Role.Name),
		zap.String("authenticationProvider", u.AuthenticationSource.Provider),
	}
}
