package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	logger.ConfigureTestLogging(t)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLoginStoresSession(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "dicoogle" || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, map[string]interface{}{
			"token": "e3f9f4c9", "user": "dicoogle",
			"roles": []string{"Administrators"}, "admin": true,
		})
	})
	c := newTestClient(t, handler)

	resp, err := c.Login(context.Background(), "dicoogle", "secret")
	require.NoError(t, err)
	require.Equal(t, "e3f9f4c9", resp.Token)
	require.True(t, resp.Admin)
	require.Equal(t, "e3f9f4c9", c.Token())
	require.Equal(t, "dicoogle", c.Username())
	require.Equal(t, []string{"Administrators"}, c.Roles())
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	c.SetToken("pre-existing")

	_, err := c.Login(context.Background(), "dicoogle", "wrong")
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeUnauthorized))
	require.Equal(t, "pre-existing", c.Token())
}

func TestRestoreSessionAdoptsToken(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		if r.Header.Get("Authorization") != "saved-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, map[string]interface{}{
			"user": "alice", "roles": []string{"Observers"}, "admin": false,
		})
	})
	c := newTestClient(t, handler)

	info, err := c.RestoreSession(context.Background(), "saved-token")
	require.NoError(t, err)
	require.Equal(t, "alice", info.User)
	require.Equal(t, "saved-token", c.Token())
}

func TestRestoreSessionRejectedTokenStaysUnauthenticated(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.RestoreSession(context.Background(), "stale-token")
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeUnauthorized))
	require.Empty(t, c.Token())
}

func TestLogoutClearsSession(t *testing.T) {
	var sawToken string
	handler := http.NewServeMux()
	handler.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		sawToken = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})
	c := newTestClient(t, handler)
	c.setSession("tok", "alice", []string{"dev"})

	require.NoError(t, c.Logout(context.Background()))
	require.Equal(t, "tok", sawToken)
	require.Empty(t, c.Token())
	require.Empty(t, c.Username())
}

func TestLogoutFallsBackToGETOn405(t *testing.T) {
	var postSeen, getSeen bool
	handler := http.NewServeMux()
	handler.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			postSeen = true
			w.WriteHeader(http.StatusMethodNotAllowed)
		case http.MethodGet:
			getSeen = true
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	c := newTestClient(t, handler)
	c.SetToken("tok")

	require.NoError(t, c.Logout(context.Background()))
	require.True(t, postSeen, "POST should be attempted first")
	require.True(t, getSeen, "GET fallback should follow the 405")
	require.Empty(t, c.Token())
}

func TestLogoutOtherErrorsAreNotRetried(t *testing.T) {
	var calls int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	c.SetToken("tok")

	err := c.Logout(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, calls)
	// session stays in place on a failed logout
	require.Equal(t, "tok", c.Token())
}
