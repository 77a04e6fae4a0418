package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// Body is a decoded response body. Exactly one of JSON, Text or Raw is
// populated, according to the declared media type: application/json bodies
// land in JSON, text/* bodies in Text, and everything else is kept opaque in
// Raw with its MediaType. The rule is applied to every endpoint, including
// ones that nominally always return JSON, because some server versions
// mislabel content types.
type Body struct {
	MediaType string
	JSON      json.RawMessage
	Text      string
	Raw       []byte
}

func (c *Client) get(ctx context.Context, path string, req apimodels.Request, out interface{}) error {
	return c.send(ctx, http.MethodGet, path, req, out)
}

func (c *Client) post(ctx context.Context, path string, req apimodels.Request, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, req, out)
}

func (c *Client) put(ctx context.Context, path string, req apimodels.Request, out interface{}) error {
	return c.send(ctx, http.MethodPut, path, req, out)
}

func (c *Client) delete(ctx context.Context, path string, req apimodels.Request, out interface{}) error {
	return c.send(ctx, http.MethodDelete, path, req, out)
}

func (c *Client) send(ctx context.Context, method, path string, req apimodels.Request, out interface{}) error {
	body, err := c.do(ctx, method, path, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeJSON(body, out)
}

// do performs a single request. Errors are never retried here; the two
// legacy 405 fallbacks live with their operations.
func (c *Client) do(ctx context.Context, method, path string, req apimodels.Request) (*Body, error) {
	resp, err := c.doRaw(ctx, method, path, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeResponse(resp)
}

// doRaw performs a single request and hands back the open response, for
// endpoints whose body is a stream rather than a document. The caller owns
// resp.Body.
func (c *Client) doRaw(ctx context.Context, method, path string, req apimodels.Request) (*http.Response, error) {
	if req == nil {
		req = &apimodels.BaseRequest{}
	}
	hr := req.ToHTTPRequest()

	addr := c.baseURL.JoinPath(path)
	if query := apimodels.EncodeParams(hr.Params); query != "" {
		addr.RawQuery = query
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, addr.String(), hr.Body)
	if err != nil {
		return nil, dgerrors.Wrap(err, "building %s %s request", method, path).
			WithCode(dgerrors.CodeConfiguration)
	}
	for k, vs := range hr.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if hr.Accept != "" {
		httpReq.Header.Set("Accept", hr.Accept)
	}
	// never attach an empty Authorization header; a header set by the
	// request itself (session restore) wins over the stored token
	if token := c.Token(); token != "" && httpReq.Header.Get("Authorization") == "" {
		httpReq.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, dgerrors.Wrap(err, "%s %s aborted", method, path).
				WithCode(dgerrors.CodeNetworkFailure)
		}
		return nil, dgerrors.Wrap(err, "%s %s failed", method, path).
			WithCode(dgerrors.CodeNetworkFailure)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, apimodels.NewAPIErrorFromResponse(resp).ToDGError()
	}
	return resp, nil
}

func decodeResponse(resp *http.Response) (*Body, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dgerrors.Wrap(err, "reading response body").
			WithCode(dgerrors.CodeNetworkFailure)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	body := &Body{MediaType: mediaType}
	switch {
	case mediaType == "application/json":
		body.JSON = raw
	case strings.HasPrefix(mediaType, "text/"):
		body.Text = string(raw)
	default:
		body.Raw = raw
	}
	return body, nil
}

// decodeJSON materializes a JSON outcome from a decoded body. Bodies labeled
// as text are still given a chance to parse as JSON, for server versions
// that mislabel their responses.
func decodeJSON(body *Body, out interface{}) error {
	var raw []byte
	switch {
	case body.JSON != nil:
		raw = body.JSON
	case body.Text != "":
		raw = []byte(body.Text)
	case len(body.Raw) > 0:
		return dgerrors.New("expected a JSON response, got media type %q", body.MediaType).
			WithCode(dgerrors.CodeInvalidServerOutput)
	default:
		return dgerrors.New("expected a JSON response, got an empty body").
			WithCode(dgerrors.CodeInvalidServerOutput)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return dgerrors.Wrap(err, "unexpected server output").
			WithCode(dgerrors.CodeInvalidServerOutput)
	}
	return nil
}
