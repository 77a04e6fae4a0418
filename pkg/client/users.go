package client

import (
	"context"
	"net/http"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// Users is a handle on the administrative user endpoints. Authorization is
// enforced server-side; errors surface as-is.
type Users struct {
	client *Client
}

// Users returns a handle on the user endpoints.
func (c *Client) Users() *Users {
	return &Users{client: c}
}

// List returns all accounts.
func (u *Users) List(ctx context.Context) (*apimodels.ListUsersResponse, error) {
	var resp apimodels.ListUsersResponse
	if err := u.client.get(ctx, userPath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Add creates an account. Legacy servers answer the POST with 405 Method
// Not Allowed and want PUT instead; that one case is retried with PUT and
// the same payload.
func (u *Users) Add(ctx context.Context, username, password string, admin bool) error {
	req := apimodels.AddUserRequest{Username: username, Password: password, Admin: admin}
	err := u.client.post(ctx, userPath, &req, nil)
	if err != nil && dgerrors.StatusCode(err) == http.StatusMethodNotAllowed {
		err = u.client.put(ctx, userPath+"/"+username, &req, nil)
	}
	return err
}

// Remove deletes an account.
func (u *Users) Remove(ctx context.Context, username string) error {
	var resp apimodels.SuccessResponse
	if err := u.client.delete(ctx, userPath+"/"+username, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return dgerrors.New("server refused to remove user %q", username).
			WithCode(dgerrors.CodeResponseError)
	}
	return nil
}
