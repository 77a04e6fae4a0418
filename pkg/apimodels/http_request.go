package apimodels

import (
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// HTTPRequest is used to help build up a request before it is handed to the
// transport layer.
type HTTPRequest struct {
	Params url.Values
	Body   io.Reader
	Header http.Header

	// Accept, when set, is sent as the Accept header for this request.
	Accept string
}

// NewHTTPRequest is used to create a new request
func NewHTTPRequest() *HTTPRequest {
	return &HTTPRequest{
		Header: make(http.Header),
		Params: make(url.Values),
	}
}

// NullParam is a sentinel parameter value rendered as a bare key with no
// "=value" part. Some historical server query parsers distinguish a bare key
// from an empty value; this is a compatibility quirk preserved exactly, not a
// convention to adopt elsewhere.
const NullParam = "\x00"

// EncodeParams renders url.Values into a query string, with NullParam values
// rendered as bare keys. Keys are emitted in sorted order so generated URLs
// are stable.
func EncodeParams(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range params[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			if v == NullParam {
				continue
			}
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
