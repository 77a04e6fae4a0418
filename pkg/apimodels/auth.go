package apimodels

import (
	"net/url"
	"strings"
)

// LoginRequest carries the credentials as a form-urlencoded body, which is
// what the login endpoint expects (unlike the JSON-bodied management
// endpoints).
type LoginRequest struct {
	BaseRequest

	Username string
	Password string
}

func (o *LoginRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	form := make(url.Values)
	form.Set("username", o.Username)
	form.Set("password", o.Password)
	r.Body = strings.NewReader(form.Encode())
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// LoginResponse is the outcome of a password login.
type LoginResponse struct {
	Token string   `json:"token"`
	User  string   `json:"user"`
	Roles []string `json:"roles"`
	Admin bool     `json:"admin"`
}

// SessionInfo is the identity behind an existing token, as reported by the
// GET variant of the login endpoint.
type SessionInfo struct {
	User  string   `json:"user"`
	Roles []string `json:"roles"`
	Admin bool     `json:"admin"`
}
