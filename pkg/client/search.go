package client

import (
	"context"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// SearchOptions tune a flat or hierarchical search. The zero value asks for
// the server defaults.
type SearchOptions struct {
	// Keyword forces the query to be treated as keyword (field:value)
	// syntax or as free text. When nil, the syntax is auto-detected from
	// the query string (see IsKeywordQuery).
	Keyword *bool

	// Providers names the query providers to ask. Empty lets the server
	// choose.
	Providers []string

	// Fields restricts or extends the attributes returned per result.
	Fields []string

	// PSize and Offset paginate the result window.
	PSize  int
	Offset int
}

func (o SearchOptions) toRequest(query string) apimodels.SearchRequest {
	keyword := IsKeywordQuery(query)
	if o.Keyword != nil {
		keyword = *o.Keyword
	}
	return apimodels.SearchRequest{
		Query:     query,
		Keyword:   keyword,
		Providers: o.Providers,
		Fields:    o.Fields,
		PSize:     o.PSize,
		Offset:    o.Offset,
	}
}

// Search queries the archive's query providers. An empty result set is a
// successful outcome, not an error.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*apimodels.SearchResponse, error) {
	req := opts.toRequest(query)
	var resp apimodels.SearchResponse
	if err := c.get(ctx, searchPath, &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchDIM queries the archive and groups the results into the
// patient/study/series/image hierarchy, populated down to depth.
func (c *Client) SearchDIM(ctx context.Context, query string, depth apimodels.DIMLevel, opts SearchOptions) (*apimodels.SearchDIMResponse, error) {
	req := apimodels.SearchDIMRequest{
		SearchRequest: opts.toRequest(query),
		Depth:         depth,
	}
	var resp apimodels.SearchDIMResponse
	if err := c.get(ctx, searchDIMPath, &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Dump retrieves every attribute of the item with the given SOP instance
// UID. The UID shape is validated before any network call.
func (c *Client) Dump(ctx context.Context, uid string, providers ...string) (*apimodels.DumpResponse, error) {
	if !IsValidDicomUID(uid) {
		return nil, dgerrors.New("malformed DICOM UID %q", uid).
			WithCode(dgerrors.CodeValidation).
			WithHint("a UID is dot-separated decimal components, e.g. 1.2.3.4")
	}
	req := apimodels.DumpRequest{UID: uid, Providers: providers}
	var resp apimodels.DumpResponse
	if err := c.get(ctx, dumpPath, &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProviders lists the plugins of the given type. An empty type means
// "query".
func (c *Client) GetProviders(ctx context.Context, providerType string) ([]string, error) {
	if providerType == "" {
		providerType = "query"
	}
	req := apimodels.GetProvidersRequest{Type: providerType}
	var resp []string
	if err := c.get(ctx, providersPath, &req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetQueryProviders lists the query providers.
func (c *Client) GetQueryProviders(ctx context.Context) ([]string, error) {
	return c.GetProviders(ctx, "query")
}

// GetIndexProviders lists the index providers.
func (c *Client) GetIndexProviders(ctx context.Context) ([]string, error) {
	return c.GetProviders(ctx, "index")
}

// GetStorageProviders lists the storage providers.
func (c *Client) GetStorageProviders(ctx context.Context) ([]string, error) {
	return c.GetProviders(ctx, "storage")
}
