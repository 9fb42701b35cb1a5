package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/repositories/token"
)

func newAuthFixture(t *testing.T, handler http.HandlerFunc) (AuthService, token.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := token.NewMemoryStore()
	client := api.New(api.Config{BaseURL: srv.URL, BasePath: "/api", Tokens: tokens})
	return NewAuthService(client, tokens), tokens
}

func TestAuth_LoginStoresToken(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"user":{"id":"u1","email":"a@b.c","role":"STUDENT"},"token":"tok123"}`))
	})

	resp, err := svc.Login(ctx, Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)

	stored, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", stored)
}

func TestAuth_LoginFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	_, err := svc.Login(ctx, Credentials{Email: "a@b.c", Password: "bad"})
	require.Error(t, err)
	assert.True(t, api.IsAuth(err))

	stored, _ := tokens.Token(ctx)
	assert.Empty(t, stored)
}

func TestAuth_RegisterStoresToken(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"user":{"id":"u1","email":"a@b.c","role":"STUDENT"},"token":"tok123"}`))
	})

	_, err := svc.Register(ctx, Registration{Email: "a@b.c", Password: "pw", Name: "A"})
	require.NoError(t, err)

	stored, _ := tokens.Token(ctx)
	assert.Equal(t, "tok123", stored)
}

func TestAuth_LogoutClearsTokenEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	})
	require.NoError(t, tokens.Set(ctx, "tok123"))

	err := svc.Logout(ctx)
	require.Error(t, err)

	stored, _ := tokens.Token(ctx)
	assert.Empty(t, stored)
}

func TestAuth_DeleteAccountClearsToken(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"message":"Account deleted","deletedUserId":"u1","deletedEmail":"a@b.c"}`))
	})
	require.NoError(t, tokens.Set(ctx, "tok123"))

	resp, err := svc.DeleteAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.DeletedUserID)

	stored, _ := tokens.Token(ctx)
	assert.Empty(t, stored)
}

func TestAuth_ProfileUsesStoredToken(t *testing.T) {
	ctx := context.Background()
	var gotAuth string
	svc, tokens := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"u1","email":"a@b.c","role":"ADMIN"}`))
	})
	require.NoError(t, tokens.Set(ctx, "tok123"))

	user, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "ADMIN", string(user.Role))
}
