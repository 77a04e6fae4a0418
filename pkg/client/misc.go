package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// GetVersion reads the server's version.
func (c *Client) GetVersion(ctx context.Context) (*apimodels.VersionResponse, error) {
	var resp apimodels.VersionResponse
	if err := c.get(ctx, versionPath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRawLog reads the server's raw text log.
func (c *Client) GetRawLog(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, loggerPath, nil)
	if err != nil {
		return "", err
	}
	switch {
	case body.Text != "":
		return body.Text, nil
	case len(body.Raw) > 0:
		return string(body.Raw), nil
	case body.JSON != nil:
		return string(body.JSON), nil
	default:
		return "", nil
	}
}

// GetDicTags reads the server's DICOM tag dictionary.
func (c *Client) GetDicTags(ctx context.Context) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.get(ctx, dictagsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetWebUIPlugins lists the server's web UI plugins, optionally filtered by
// slot.
func (c *Client) GetWebUIPlugins(ctx context.Context, slotID string) ([]apimodels.WebUIPlugin, error) {
	req := apimodels.GetWebUIPluginsRequest{SlotID: slotID}
	var resp apimodels.WebUIPluginsResponse
	if err := c.get(ctx, webuiPath, &req, &resp); err != nil {
		return nil, err
	}
	return resp.Plugins, nil
}

type dic2pngRequest struct {
	apimodels.BaseGetRequest

	sopInstanceUID string
	frame          int
}

func (o *dic2pngRequest) ToHTTPRequest() *apimodels.HTTPRequest {
	r := o.BaseGetRequest.ToHTTPRequest()
	r.Params.Set("SOPInstanceUID", o.sopInstanceUID)
	if o.frame > 0 {
		r.Params.Set("frame", strconv.Itoa(o.frame))
	}
	return r
}

// Dic2Png fetches a rendered preview of one frame of an image. The body is
// the image bytes with the server's declared media type; it is never wrapped
// as JSON.
func (c *Client) Dic2Png(ctx context.Context, sopInstanceUID string, frame int) ([]byte, string, error) {
	if !IsValidDicomUID(sopInstanceUID) {
		return nil, "", dgerrors.New("malformed DICOM UID %q", sopInstanceUID).
			WithCode(dgerrors.CodeValidation)
	}
	req := &dic2pngRequest{sopInstanceUID: sopInstanceUID, frame: frame}
	body, err := c.do(ctx, http.MethodGet, dic2pngPath, req)
	if err != nil {
		return nil, "", err
	}
	switch {
	case len(body.Raw) > 0:
		return body.Raw, body.MediaType, nil
	case body.Text != "":
		return []byte(body.Text), body.MediaType, nil
	default:
		return nil, "", dgerrors.New("empty image response").
			WithCode(dgerrors.CodeInvalidServerOutput)
	}
}

type exportRequest struct {
	apimodels.BaseGetRequest

	query     string
	keyword   bool
	fields    []string
	providers []string
}

func (o *exportRequest) ToHTTPRequest() *apimodels.HTTPRequest {
	r := o.BaseGetRequest.ToHTTPRequest()
	r.Params.Set("query", o.query)
	r.Params.Set("keyword", strconv.FormatBool(o.keyword))
	// the export endpoint takes the field list as one JSON-encoded param
	fields, _ := json.Marshal(o.fields)
	r.Params.Set("fields", string(fields))
	for _, p := range o.providers {
		r.Params.Add("providers", p)
	}
	return r
}

// ExportCSV issues an export job for the results of a query and returns the
// CSV stream. The caller owns the returned reader and must close it.
func (c *Client) ExportCSV(ctx context.Context, query string, fields []string, opts SearchOptions) (io.ReadCloser, error) {
	if len(fields) == 0 {
		return nil, dgerrors.New("no export fields given").
			WithCode(dgerrors.CodeValidation)
	}
	keyword := IsKeywordQuery(query)
	if opts.Keyword != nil {
		keyword = *opts.Keyword
	}
	req := &exportRequest{
		query:     query,
		keyword:   keyword,
		fields:    fields,
		providers: opts.Providers,
	}
	resp, err := c.doRaw(ctx, http.MethodGet, exportFilePath, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
