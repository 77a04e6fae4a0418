package apimodels

import "strconv"

// SearchRequest is the request for a free-text or keyword query against the
// archive's query providers.
type SearchRequest struct {
	BaseGetRequest

	// Query is the query string, either free text or the server's
	// field:value keyword syntax.
	Query string

	// Keyword marks the query as using the keyword syntax. The client
	// resolves this before the request is built, so it is always set here.
	Keyword bool

	// Providers names the query providers to use. Empty means the server
	// picks.
	Providers []string

	// Fields restricts or extends the attributes returned per result.
	Fields []string

	// PSize and Offset paginate the result window. Zero values are omitted.
	PSize  int
	Offset int
}

func (o *SearchRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseGetRequest.ToHTTPRequest()

	r.Params.Set("query", o.Query)
	r.Params.Set("keyword", strconv.FormatBool(o.Keyword))
	for _, p := range o.Providers {
		r.Params.Add("provider", p)
	}
	for _, f := range o.Fields {
		r.Params.Add("field", f)
	}
	if o.PSize > 0 {
		r.Params.Set("psize", strconv.Itoa(o.PSize))
	}
	if o.Offset > 0 {
		r.Params.Set("offset", strconv.Itoa(o.Offset))
	}
	return r
}

// SearchResult is one hit of a flat search.
type SearchResult struct {
	URI    string                 `json:"uri"`
	Score  float64                `json:"score,omitempty"`
	Fields map[string]interface{} `json:"fields"`
}

// SearchResponse is the outcome of a flat search. ElapsedTimeMs is the
// server-side query time; the wire name is "elapsedTime".
type SearchResponse struct {
	Results       []SearchResult `json:"results"`
	ElapsedTimeMs int64          `json:"elapsedTime"`
	NumResults    int            `json:"numResults"`
}

// DumpRequest asks for every attribute of a single item by SOP instance UID.
type DumpRequest struct {
	BaseGetRequest

	UID       string
	Providers []string
}

func (o *DumpRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseGetRequest.ToHTTPRequest()
	r.Params.Set("uid", o.UID)
	for _, p := range o.Providers {
		r.Params.Add("provider", p)
	}
	return r
}

// DumpResponse carries the attribute dump of a single item.
type DumpResponse struct {
	Results       SearchResult `json:"results"`
	ElapsedTimeMs int64        `json:"elapsedTime"`
}

// GetProvidersRequest lists the plugins of a given type. Type defaults to
// "query" at the client surface.
type GetProvidersRequest struct {
	BaseGetRequest

	Type string
}

func (o *GetProvidersRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseGetRequest.ToHTTPRequest()
	if o.Type != "" {
		r.Params.Set("type", o.Type)
	}
	return r
}
