package auth

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// ConfigFromEnv reads ADMIN_ROLE_NAME, AUTH_DEV_BYPASS and the ASSERTION_*
// variables. ASSERTION_PUBLIC_KEY_FILE names a PEM file.
func ConfigFromEnv() (Config, error) {
	leeway := 60 * time.Second
	if v := strings.TrimSpace(os.Getenv("ASSERTION_LEEWAY_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			leeway = time.Duration(n) * time.Second
		}
	}

	cfg := Config{
		AdminRole:  os.Getenv("ADMIN_ROLE_NAME"),
		DevBypass:  os.Getenv("AUTH_DEV_BYPASS") == "true",
		CookieName: strings.TrimSpace(os.Getenv("ASSERTION_COOKIE_NAME")),
		Issuer:     strings.TrimSpace(os.Getenv("ASSERTION_ISSUER")),
		Audience:   strings.TrimSpace(os.Getenv("ASSERTION_AUDIENCE")),
		Leeway:     leeway,
		HMACSecret: []byte(os.Getenv("ASSERTION_HMAC_SECRET")),
	}
	if p := strings.TrimSpace(os.Getenv("ASSERTION_PUBLIC_KEY_FILE")); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return Config{}, err
		}
		cfg.PublicKeyPEM = b
	}
	return cfg, nil
}

// ProvideAuthentication wires the middleware from the environment.
func ProvideAuthentication() (*Middleware, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
)
