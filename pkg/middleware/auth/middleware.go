package auth

import (
	"crypto/rsa"
	"time"
)

// Middleware authenticates requests from a signed assertion carried in a
// cookie or a bearer header. Either an RSA public key (RS256) or a shared
// secret (HS256) verifies it.
type Middleware struct {
	adminRole string
	devBypass bool

	assertCookieName string
	assertIssuer     string
	assertAudience   string
	assertLeeway     time.Duration

	rsaKey     *rsa.PublicKey
	hmacSecret []byte
}

// Config holds the settings ProvideAuthentication reads from the environment.
type Config struct {
	AdminRole    string
	DevBypass    bool
	CookieName   string
	Issuer       string
	Audience     string
	Leeway       time.Duration
	PublicKeyPEM []byte
	HMACSecret   []byte
}

// New builds a Middleware. A malformed public key is an error; no key at all
// leaves every request unauthenticated.
func New(cfg Config) (*Middleware, error) {
	m := &Middleware{
		adminRole:        cfg.AdminRole,
		devBypass:        cfg.DevBypass,
		assertCookieName: firstNonEmpty(cfg.CookieName, "assert"),
		assertIssuer:     cfg.Issuer,
		assertAudience:   cfg.Audience,
		assertLeeway:     cfg.Leeway,
		hmacSecret:       cfg.HMACSecret,
	}
	if len(cfg.PublicKeyPEM) > 0 {
		k, err := parseRSAPublicKey(cfg.PublicKeyPEM)
		if err != nil {
			return nil, err
		}
		m.rsaKey = k
	}
	return m, nil
}

func (m *Middleware) configured() bool {
	return m.rsaKey != nil || len(m.hmacSecret) > 0
}
