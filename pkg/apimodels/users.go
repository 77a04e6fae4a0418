package apimodels

import "strconv"

// User is one account as reported by the server.
type User struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
	Admin    bool     `json:"admin,omitempty"`
}

// ListUsersResponse wraps the server's user listing.
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// AddUserRequest creates an account. Legacy servers reject the POST with 405
// and require PUT; the client retries accordingly with this same payload.
type AddUserRequest struct {
	BaseRequest

	Username string
	Password string
	Admin    bool
}

func (o *AddUserRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	r.Params.Set("username", o.Username)
	r.Params.Set("password", o.Password)
	r.Params.Set("admin", strconv.FormatBool(o.Admin))
	return r
}

// SuccessResponse is the {"success": bool} acknowledgement some management
// endpoints reply with.
type SuccessResponse struct {
	Success bool `json:"success"`
}
