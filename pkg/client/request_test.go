package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

func decodeFrom(t *testing.T, contentType, body string) *Body {
	t.Helper()
	rec := httptest.NewRecorder()
	if contentType != "" {
		rec.Header().Set("Content-Type", contentType)
	}
	_, err := rec.WriteString(body)
	require.NoError(t, err)

	decoded, err := decodeResponse(rec.Result())
	require.NoError(t, err)
	return decoded
}

func TestDecodeResponseJSON(t *testing.T) {
	body := decodeFrom(t, "application/json; charset=utf-8", `{"a":1}`)
	require.JSONEq(t, `{"a":1}`, string(body.JSON))
	require.Empty(t, body.Text)
	require.Empty(t, body.Raw)
}

func TestDecodeResponseText(t *testing.T) {
	body := decodeFrom(t, "text/plain", "2024-05-02 INFO started")
	require.Equal(t, "2024-05-02 INFO started", body.Text)
	require.Nil(t, body.JSON)
}

func TestDecodeResponseOpaque(t *testing.T) {
	body := decodeFrom(t, "image/png", "\x89PNG...")
	require.Equal(t, "image/png", body.MediaType)
	require.Equal(t, []byte("\x89PNG..."), body.Raw)
}

func TestDecodeJSONToleratesMislabeledText(t *testing.T) {
	// some server versions label JSON documents as text/plain
	body := decodeFrom(t, "text/plain", `{"version":"2.5.0"}`)

	var out struct {
		Version string `json:"version"`
	}
	require.NoError(t, decodeJSON(body, &out))
	require.Equal(t, "2.5.0", out.Version)
}

func TestDecodeJSONRejectsOpaqueBody(t *testing.T) {
	body := decodeFrom(t, "application/octet-stream", "binary junk")

	var out map[string]interface{}
	err := decodeJSON(body, &out)
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeInvalidServerOutput))
}

func TestDecodeJSONRejectsMalformedBody(t *testing.T) {
	body := decodeFrom(t, "application/json", "{not json")

	var out map[string]interface{}
	err := decodeJSON(body, &out)
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeInvalidServerOutput))
}

func TestNetworkFailureCode(t *testing.T) {
	// a server that is no longer there
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c, err := New(endpoint)
	require.NoError(t, err)

	_, err = c.GetVersion(testContext(t))
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeNetworkFailure))
}

func TestServerErrorMessageIsSurfaced(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unknown provider"}`))
	}))

	_, err := c.GetVersion(testContext(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown provider")
	require.Equal(t, http.StatusBadRequest, dgerrors.StatusCode(err))
}

func TestPlainTextServerErrorIsSurfaced(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index provider offline", http.StatusServiceUnavailable)
	}))

	_, err := c.GetVersion(testContext(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), strings.TrimSpace("index provider offline"))
}
