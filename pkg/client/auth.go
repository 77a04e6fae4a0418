package client

import (
	"context"
	"net/http"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// Login authenticates with the server and, on success, adopts the issued
// session token for all subsequent requests. On failure the session is left
// exactly as it was.
func (c *Client) Login(ctx context.Context, username, password string) (*apimodels.LoginResponse, error) {
	req := &apimodels.LoginRequest{Username: username, Password: password}
	var resp apimodels.LoginResponse
	if err := c.post(ctx, loginPath, req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, dgerrors.New("login response carried no session token").
			WithCode(dgerrors.CodeInvalidServerOutput)
	}
	c.setSession(resp.Token, resp.User, resp.Roles)
	return &resp, nil
}

// RestoreSession validates a previously issued token against the server and
// adopts it, learning the identity behind it. A rejected token leaves the
// client unauthenticated.
func (c *Client) RestoreSession(ctx context.Context, token string) (*apimodels.SessionInfo, error) {
	req := &apimodels.BaseGetRequest{
		BaseRequest: apimodels.BaseRequest{
			Headers: map[string]string{"Authorization": token},
		},
	}
	var resp apimodels.SessionInfo
	if err := c.get(ctx, loginPath, req, &resp); err != nil {
		return nil, err
	}
	c.setSession(token, resp.User, resp.Roles)
	return &resp, nil
}

// Logout invalidates the session server-side and clears it locally. Older
// servers only accept GET on the logout endpoint and answer the POST with
// 405 Method Not Allowed; that one case is retried with GET. This fallback
// is part of the contract with deployed servers, not an optimization.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, logoutPath, nil, nil)
	if err != nil && dgerrors.StatusCode(err) == http.StatusMethodNotAllowed {
		err = c.get(ctx, logoutPath, nil, nil)
	}
	if err != nil {
		return err
	}
	c.Reset()
	return nil
}
