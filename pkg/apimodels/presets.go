package apimodels

import (
	"net/url"
	"strings"
)

// ExportPreset is a saved selection of export fields, scoped to a user.
type ExportPreset struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// SavePresetRequest stores a preset under a user. The server takes the field
// list as a form-urlencoded body, not query parameters.
type SavePresetRequest struct {
	BaseRequest

	Username string
	Name     string
	Fields   []string
}

func (o *SavePresetRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	form := make(url.Values)
	for _, f := range o.Fields {
		form.Add("field", f)
	}
	r.Body = strings.NewReader(form.Encode())
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}
