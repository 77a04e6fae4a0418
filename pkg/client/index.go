package client

import (
	"context"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

func validateURIs(uris []string) error {
	if len(uris) == 0 {
		return dgerrors.New("no item URIs given").
			WithCode(dgerrors.CodeValidation)
	}
	return nil
}

// Index asks the server to index the given items, on all index providers or
// on the named one. A nil error means the task was accepted, not that
// indexing finished; progress is observed through Tasks().List.
func (c *Client) Index(ctx context.Context, uris []string, provider string) error {
	if err := validateURIs(uris); err != nil {
		return err
	}
	req := apimodels.IndexRequest{URIs: uris, Provider: provider}
	return c.post(ctx, indexTaskPath, &req, nil)
}

// Unindex removes the given items from the index (all providers, or the
// named one). It is not recursive: exactly the named resources are
// unindexed, and the underlying files are untouched.
func (c *Client) Unindex(ctx context.Context, uris []string, provider string) error {
	if err := validateURIs(uris); err != nil {
		return err
	}
	req := apimodels.IndexRequest{URIs: uris, Provider: provider}
	return c.post(ctx, unindexTaskPath, &req, nil)
}

// Remove deletes the underlying files of the given items. It does NOT
// update any index; an item removed without being unindexed leaves a stale
// index entry behind. That asymmetry is server behavior this client
// deliberately does not paper over: callers wanting both must call Unindex
// themselves.
func (c *Client) Remove(ctx context.Context, uris []string) error {
	if err := validateURIs(uris); err != nil {
		return err
	}
	req := apimodels.IndexRequest{URIs: uris}
	return c.post(ctx, removeTaskPath, &req, nil)
}
