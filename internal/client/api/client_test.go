package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenFunc adapts a function to the TokenProvider interface.
type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

func staticToken(tok string) TokenProvider {
	return tokenFunc(func(context.Context) (string, error) { return tok, nil })
}

func newTestClient(srv *httptest.Server, tokens TokenProvider) *Client {
	return New(Config{BaseURL: srv.URL, BasePath: "/api", Tokens: tokens})
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, staticToken("tok123"))
	require.NoError(t, c.Get(context.Background(), "/courses", nil))

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoAuthorizationHeaderWhenAnonymous(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, staticToken(""))
	require.NoError(t, c.Get(context.Background(), "/courses", nil))
	assert.False(t, sawHeader)
}

func TestClient_TokenProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	broken := tokenFunc(func(context.Context) (string, error) { return "", errors.New("db locked") })
	c := newTestClient(srv, broken)

	err := c.Get(context.Background(), "/courses", nil)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, KindConnectivity, apiErr.Kind)
}

func TestClient_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/profile", r.URL.Path)
		w.Write([]byte(`{"id":"u1","email":"a@b.c"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, c.Get(context.Background(), "/users/profile", &out))
	assert.Equal(t, "u1", out.ID)
	assert.Equal(t, "a@b.c", out.Email)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	body := map[string]string{"email": "a@b.c"}
	require.NoError(t, c.Post(context.Background(), "/auth/login", body, nil))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "a@b.c", gotBody["email"])
}

func TestClient_NoContentLeavesOutUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)

	out := map[string]string{"keep": "me"}
	require.NoError(t, c.Delete(context.Background(), "/courses/c1", &out))
	assert.Equal(t, "me", out["keep"])
}

// An empty body resolves successfully regardless of the status code; the
// body length check runs before the status check.
func TestClient_EmptyBodyWinsOverErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	assert.NoError(t, c.Get(context.Background(), "/courses", nil))
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid email","field":["email"]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	err := c.Post(context.Background(), "/auth/register", map[string]string{}, nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid email", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, []string{"email"}, apiErr.Fields)
	assert.Equal(t, KindValidation, apiErr.Kind)
}

func TestClient_ErrorEnvelopeMessageKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Course not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	err := c.Get(context.Background(), "/courses/missing", nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Course not found", apiErr.Message)
	assert.Equal(t, KindUnknown, apiErr.Kind)
}

func TestClient_ErrorEnvelopeFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	err := c.Get(context.Background(), "/courses", nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "An error occurred", apiErr.Message)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestClient_MalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	err := c.Get(context.Background(), "/courses", nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Network error. Please check your connection.", apiErr.Message)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)

	var out map[string]any
	err := c.Get(context.Background(), "/courses", &out)
	assert.True(t, IsConnectivity(err))
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv, nil)
	err := c.Get(context.Background(), "/courses", nil)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Network error. Please check your connection.", apiErr.Message)
	assert.True(t, IsConnectivity(err))
}

func TestClient_AuthKind(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"Unauthorized"}`))
		}))

		c := newTestClient(srv, nil)
		err := c.Get(context.Background(), "/users/profile", nil)
		assert.True(t, IsAuth(err), "status %d", status)

		srv.Close()
	}
}

func TestDirectURL(t *testing.T) {
	c := New(Config{BaseURL: "http://localhost:5000", BasePath: "/api", Tokens: staticToken("a+b c")})

	got, err := c.DirectURL(context.Background(), "/certificates/c1/download")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api/certificates/c1/download?token=a%2Bb+c", got)
}

func TestDirectURL_Anonymous(t *testing.T) {
	c := New(Config{BaseURL: "http://localhost:5000", BasePath: "/api", Tokens: staticToken("")})

	got, err := c.DirectURL(context.Background(), "/certificates/c1/preview")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api/certificates/c1/preview", got)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Invalid email (status 400)", newError("Invalid email", 400, nil).Error())
	assert.Equal(t, "Network error. Please check your connection.", newConnectivityError().Error())
}
