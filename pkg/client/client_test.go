package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func TestNewNormalizesEndpoint(t *testing.T) {
	logger.ConfigureTestLogging(t)

	cases := map[string]string{
		"localhost:8080":          "http://localhost:8080",
		"http://localhost:8080":   "http://localhost:8080",
		"http://localhost:8080/":  "http://localhost:8080",
		"https://demo.dicoogle.com/dicoogle": "https://demo.dicoogle.com/dicoogle",
	}
	for endpoint, want := range cases {
		c, err := New(endpoint)
		require.NoError(t, err, "endpoint %q", endpoint)
		require.Equal(t, want, c.Endpoint(), "endpoint %q", endpoint)
	}
}

func TestNewSecureOptionPicksHTTPS(t *testing.T) {
	c, err := New("archive.example.org", WithSecure(true))
	require.NoError(t, err)
	require.Equal(t, "https://archive.example.org", c.Endpoint())

	// an explicit scheme is left alone
	c, err = New("http://archive.example.org", WithSecure(true))
	require.NoError(t, err)
	require.Equal(t, "http://archive.example.org", c.Endpoint())
}

func TestNewRejectsMissingEndpoint(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeConfiguration))

	_, err = New("   ")
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeConfiguration))
}

func TestClientsHoldIndependentSessions(t *testing.T) {
	a, err := New("http://localhost:8080")
	require.NoError(t, err)
	b, err := New("http://localhost:8080")
	require.NoError(t, err)

	a.SetToken("token-a")
	require.Equal(t, "token-a", a.Token())
	require.Empty(t, b.Token())
}

func TestResetClearsSession(t *testing.T) {
	c, err := New("http://localhost:8080")
	require.NoError(t, err)

	c.setSession("tok", "alice", []string{"dev"})
	require.Equal(t, "alice", c.Username())
	require.Equal(t, []string{"dev"}, c.Roles())

	c.Reset()
	require.Empty(t, c.Token())
	require.Empty(t, c.Username())
	require.Empty(t, c.Roles())
}
