package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidAssertion = errors.New("invalid assertion")

type assertionClaims struct {
	jwt.RegisteredClaims
	UID   string   `json:"uid"`
	Roles []string `json:"roles"`
	Role  string   `json:"role"`
}

func parseRSAPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	k, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("assertion public key: %w", err)
	}
	return k, nil
}

func (m *Middleware) methods() []string {
	var out []string
	if m.rsaKey != nil {
		out = append(out, jwt.SigningMethodRS256.Alg())
	}
	if len(m.hmacSecret) > 0 {
		out = append(out, jwt.SigningMethodHS256.Alg())
	}
	return out
}

func (m *Middleware) keyFor(t *jwt.Token) (any, error) {
	switch t.Method.(type) {
	case *jwt.SigningMethodRSA:
		return m.rsaKey, nil
	case *jwt.SigningMethodHMAC:
		return m.hmacSecret, nil
	}
	return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
}

func (m *Middleware) validateAssertion(raw string) (User, error) {
	if !m.configured() {
		return User{}, errors.New("assertion key not configured")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(m.methods()),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.assertLeeway),
	}
	if m.assertIssuer != "" {
		opts = append(opts, jwt.WithIssuer(m.assertIssuer))
	}
	if m.assertAudience != "" {
		opts = append(opts, jwt.WithAudience(m.assertAudience))
	}

	var claims assertionClaims
	tok, err := jwt.NewParser(opts...).ParseWithClaims(raw, &claims, m.keyFor)
	if err != nil || !tok.Valid {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}

	username := firstNonEmpty(claims.UID, claims.Subject)
	if username == "" {
		return User{}, errors.New("missing uid")
	}

	return User{
		Username:             username,
		AuthenticationSource: AuthenticationSource{Provider: "assert"},
		Role:                 Role{Name: firstNonEmpty(claims.Role, first(claims.Roles...))},
	}, nil
}
