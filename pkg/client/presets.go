package client

import (
	"context"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
)

// Presets is a handle on the per-user export preset endpoints. All of them
// require authentication; whether a user may touch another user's presets is
// decided server-side.
type Presets struct {
	client *Client
}

// Presets returns a handle on the export preset endpoints.
func (c *Client) Presets() *Presets {
	return &Presets{client: c}
}

// Get lists a user's presets. An empty username means the logged-in user.
func (p *Presets) Get(ctx context.Context, username string) ([]apimodels.ExportPreset, error) {
	path := presetsPath
	if username != "" {
		path += "/" + username
	}
	var resp []apimodels.ExportPreset
	if err := p.client.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Save stores a preset under a user, replacing any preset of the same name.
func (p *Presets) Save(ctx context.Context, username, name string, fields []string) error {
	req := apimodels.SavePresetRequest{Username: username, Name: name, Fields: fields}
	return p.client.post(ctx, presetsPath+"/"+username+"/"+name, &req, nil)
}

// FieldList returns the field names available for export presets.
func (p *Presets) FieldList(ctx context.Context) ([]string, error) {
	var resp []string
	if err := p.client.get(ctx, exportListPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
