package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/auth"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

var camp = cashbook.Owner{Type: cashbook.TypeCamp, ID: 12}

func TestAuthenticator_IssueAndParse(t *testing.T) {
	a := auth.NewAuthenticator("secret", "cashbook")

	token, err := a.Issue(7, []cashbook.Owner{camp}, time.Hour)
	require.NoError(t, err)

	claims, err := a.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, []string{"camp_12"}, claims.Owners)
	assert.True(t, claims.CanEdit(camp))
	assert.False(t, claims.CanEdit(cashbook.Owner{Type: cashbook.TypeUnit, ID: 12}))
}

func TestAuthenticator_ParseRejects(t *testing.T) {
	a := auth.NewAuthenticator("secret", "cashbook")

	expired, err := a.Issue(7, nil, -time.Minute)
	require.NoError(t, err)

	foreign, err := auth.NewAuthenticator("other", "cashbook").Issue(7, nil, time.Hour)
	require.NoError(t, err)

	otherIssuer, err := auth.NewAuthenticator("secret", "elsewhere").Issue(7, nil, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Expired", token: expired},
		{name: "WrongSecret", token: foreign},
		{name: "WrongIssuer", token: otherIssuer},
		{name: "Garbage", token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Parse(tt.token)
			assert.ErrorIs(t, err, auth.ErrUnauthenticated)
		})
	}
}

func TestAuthenticator_Middleware(t *testing.T) {
	a := auth.NewAuthenticator("secret", "cashbook")

	token, err := a.Issue(7, []cashbook.Owner{camp}, time.Hour)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.UserID(r.Context())
		assert.NoError(t, err)
		assert.Equal(t, cashbook.UserID(7), user)
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "Valid", header: "Bearer " + token, want: http.StatusTeapot},
		{name: "Missing", want: http.StatusUnauthorized},
		{name: "WrongScheme", header: "Basic " + token, want: http.StatusUnauthorized},
		{name: "Invalid", header: "Bearer nope", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			a.Middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthorizer_CanEdit(t *testing.T) {
	ctx := auth.WithClaims(context.Background(), &auth.Claims{UserID: 7, Owners: []string{"camp_12"}})

	ok, err := auth.Authorizer{}.CanEdit(ctx, 7, camp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = auth.Authorizer{}.CanEdit(ctx, 8, camp)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = auth.Authorizer{}.CanEdit(ctx, 7, cashbook.Owner{Type: cashbook.TypeEvent, ID: 1})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = auth.Authorizer{}.CanEdit(context.Background(), 7, camp)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
