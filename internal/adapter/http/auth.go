package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mesa-ledger/internal/core/domain"
)

type callerKey struct{}

// Authenticator verifies HS256 bearer tokens. The subject claim carries the
// caller's hex address.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator returns an Authenticator for secret and issuer.
func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for addr expiring at expires.
func (a *Authenticator) Issue(addr domain.Address, expires time.Time) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   addr.Hex(),
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	return tok.SignedString(a.secret)
}

// Verify parses a token and returns its subject address.
func (a *Authenticator) Verify(raw string) (domain.Address, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Address{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	addr, err := domain.ParseAddress(claims.Subject)
	if err != nil {
		return domain.Address{}, fmt.Errorf("%w: bad subject", domain.ErrUnauthorized)
	}
	return addr, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller address in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		addr, err := a.Verify(raw)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, addr)))
	})
}

var errNoCaller = errors.New("no authenticated caller")

func callerFrom(ctx context.Context) (domain.Address, error) {
	addr, ok := ctx.Value(callerKey{}).(domain.Address)
	if !ok {
		return domain.Address{}, errNoCaller
	}
	return addr, nil
}
