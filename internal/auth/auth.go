// Package auth authenticates API requests with HMAC signed bearer tokens
// and decides which cashbook owners a user may edit.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Claims identify the user and list the owners ("camp_12") whose cashbooks
// the user may edit.
type Claims struct {
	UserID int      `json:"uid"`
	Owners []string `json:"owners"`
	jwt.RegisteredClaims
}

func (c *Claims) CanEdit(owner cashbook.Owner) bool {
	return slices.Contains(c.Owners, owner.String())
}

type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for user valid for ttl.
func (a *Authenticator) Issue(user cashbook.UserID, owners []cashbook.Owner, ttl time.Duration) (string, error) {
	names := make([]string, len(owners))
	for i, o := range owners {
		names[i] = o.String()
	}

	now := time.Now()
	claims := Claims{
		UserID: int(user),
		Owners: names,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

func (a *Authenticator) Parse(token string) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return &claims, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// claims of valid ones in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := a.Parse(token)
		if err != nil {
			slog.DebugContext(r.Context(), "rejected token", "error", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

type claimsKey struct{}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

// UserID returns the authenticated user of ctx.
func UserID(ctx context.Context) (cashbook.UserID, error) {
	claims, ok := FromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	return cashbook.UserID(claims.UserID), nil
}

// Authorizer grants edit access from the claims of the request context.
type Authorizer struct{}

func (Authorizer) CanEdit(ctx context.Context, user cashbook.UserID, owner cashbook.Owner) (bool, error) {
	claims, ok := FromContext(ctx)
	if !ok {
		return false, ErrUnauthenticated
	}

	if cashbook.UserID(claims.UserID) != user {
		return false, nil
	}

	return claims.CanEdit(owner), nil
}

var _ cashbook.Authorizer = Authorizer{}
