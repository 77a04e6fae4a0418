package apimodels

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// APIError represents an error response from the server. The archive replies
// with a JSON object carrying an "error" or "message" field on some
// endpoints, and with a plain-text body on others; both are normalized here.
type APIError struct {
	HTTPStatusCode int    `json:"status"`
	Message        string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIErrorFromResponse reads a non-2xx response and produces an APIError
// carrying the status code and whatever message the server supplied.
func NewAPIErrorFromResponse(resp *http.Response) *APIError {
	apiErr := &APIError{
		HTTPStatusCode: resp.StatusCode,
		Message:        http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var wire struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err == nil {
		if wire.Error != "" {
			apiErr.Message = wire.Error
			return apiErr
		}
		if wire.Message != "" {
			apiErr.Message = wire.Message
			return apiErr
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
		apiErr.Message = text
	}
	return apiErr
}

// ToDGError converts an APIError into the client's error type with the
// matching taxonomy code.
func (e *APIError) ToDGError() *dgerrors.Error {
	return dgerrors.New(e.Message).
		WithCode(dgerrors.CodeForStatus(e.HTTPStatusCode)).
		WithHTTPStatusCode(e.HTTPStatusCode).
		WithComponent("server")
}
