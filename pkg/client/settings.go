package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// GetIndexerSettings reads the full indexer settings record.
//
// Some legacy servers deliver the record as a JSON-encoded string rather
// than a JSON object. When the first parse yields no fields, the raw text is
// parsed a second time, which recovers the document on those servers.
func (c *Client) GetIndexerSettings(ctx context.Context) (*apimodels.IndexerSettings, error) {
	body, err := c.do(ctx, http.MethodGet, indexerSettingsPath, nil)
	if err != nil {
		return nil, err
	}

	raw := body.JSON
	if raw == nil {
		raw = []byte(body.Text)
	}
	if len(raw) == 0 {
		return nil, dgerrors.New("empty indexer settings response").
			WithCode(dgerrors.CodeInvalidServerOutput)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || len(probe) == 0 {
		var quoted string
		if err := json.Unmarshal(raw, &quoted); err != nil {
			return nil, dgerrors.New("unexpected indexer settings payload").
				WithCode(dgerrors.CodeInvalidServerOutput)
		}
		raw = []byte(quoted)
	}

	var settings apimodels.IndexerSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, dgerrors.Wrap(err, "unexpected indexer settings payload").
			WithCode(dgerrors.CodeInvalidServerOutput)
	}
	return &settings, nil
}

// GetIndexerSetting reads one indexer settings field by name. Boolean fields
// may arrive as the literal strings "true"/"false" and numeric fields as
// strings; values are coerced to their natural type.
func (c *Client) GetIndexerSetting(ctx context.Context, field string) (interface{}, error) {
	body, err := c.do(ctx, http.MethodGet, indexerSettingsPath+"/"+field, nil)
	if err != nil {
		return nil, err
	}

	var value interface{}
	switch {
	case body.JSON != nil:
		if err := json.Unmarshal(body.JSON, &value); err != nil {
			return nil, dgerrors.Wrap(err, "unexpected settings value").
				WithCode(dgerrors.CodeInvalidServerOutput)
		}
	case body.Text != "":
		value = strings.TrimSpace(body.Text)
	default:
		return nil, dgerrors.New("empty settings value for field %q", field).
			WithCode(dgerrors.CodeInvalidServerOutput)
	}

	switch field {
	case apimodels.IndexerFieldZip, apimodels.IndexerFieldThumbnail, apimodels.IndexerFieldWatcher:
		return apimodels.CoerceBool(value)
	case apimodels.IndexerFieldEffort, apimodels.IndexerFieldThumbnailSize:
		return apimodels.CoerceInt(value)
	default:
		return fmt.Sprint(value), nil
	}
}

// SetIndexerSetting writes one indexer settings field.
func (c *Client) SetIndexerSetting(ctx context.Context, field string, value interface{}) error {
	return c.SetIndexerSettings(ctx, map[string]interface{}{field: value})
}

// SetIndexerSettings writes several indexer settings fields at once. An
// unrecognized field name is warned about but still sent, since newer server
// versions may have grown fields this client predates. Unsendable values
// fail before any network I/O.
func (c *Client) SetIndexerSettings(ctx context.Context, fields map[string]interface{}) error {
	var merr *multierror.Error
	params := make(map[string]string, len(fields))
	for field, value := range fields {
		if !apimodels.IsKnownIndexerField(field) {
			log.Ctx(ctx).Warn().Str("field", field).
				Msg("unrecognized indexer settings field, sending it anyway")
		}
		rendered, err := apimodels.FormatParamValue(value)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "field %q", field))
			continue
		}
		params[field] = rendered
	}
	if err := merr.ErrorOrNil(); err != nil {
		return err
	}
	req := apimodels.SetSettingsRequest{Fields: params}
	return c.post(ctx, indexerSettingsPath, &req, nil)
}

// GetTransferSettings lists the transfer syntax settings.
func (c *Client) GetTransferSettings(ctx context.Context) ([]apimodels.TransferSyntax, error) {
	var resp []apimodels.TransferSyntax
	if err := c.get(ctx, transferSettingsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetTransferOption flips one option of one transfer syntax.
func (c *Client) SetTransferOption(ctx context.Context, uid, option string, value bool) error {
	req := apimodels.SetTransferOptionRequest{UID: uid, Option: option, Value: value}
	return c.post(ctx, transferSettingsPath, &req, nil)
}

// GetQuerySettings reads the Query/Retrieve custom settings as a flat
// key/value record.
func (c *Client) GetQuerySettings(ctx context.Context) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.get(ctx, querySettingsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetQuerySettings writes Query/Retrieve custom settings. Only the given
// fields are transmitted.
func (c *Client) SetQuerySettings(ctx context.Context, fields map[string]interface{}) error {
	params := make(map[string]string, len(fields))
	for field, value := range fields {
		rendered, err := apimodels.FormatParamValue(value)
		if err != nil {
			return errors.Wrapf(err, "field %q", field)
		}
		params[field] = rendered
	}
	req := apimodels.SetSettingsRequest{Fields: params}
	return c.post(ctx, querySettingsPath, &req, nil)
}

// GetAETitle reads the archive's AE title.
func (c *Client) GetAETitle(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, dicomSettingsPath, nil)
	if err != nil {
		return "", err
	}
	if body.JSON != nil {
		var wire struct {
			AETitle string `json:"aetitle"`
		}
		if err := json.Unmarshal(body.JSON, &wire); err == nil && wire.AETitle != "" {
			return wire.AETitle, nil
		}
	}
	if text := strings.TrimSpace(body.Text); text != "" {
		return text, nil
	}
	return "", dgerrors.New("unexpected AE title payload").
		WithCode(dgerrors.CodeInvalidServerOutput)
}

// SetAETitle writes the archive's AE title.
func (c *Client) SetAETitle(ctx context.Context, aetitle string) error {
	req := apimodels.SetSettingsRequest{Fields: map[string]string{"aetitle": aetitle}}
	return c.put(ctx, dicomSettingsPath, &req, nil)
}

// ListRemoteStorages lists the remote DICOM storage servers known to the
// archive.
func (c *Client) ListRemoteStorages(ctx context.Context) ([]apimodels.RemoteStorage, error) {
	var resp []apimodels.RemoteStorage
	if err := c.get(ctx, remoteStoragesPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddRemoteStorage registers a remote DICOM storage server, keyed by its AE
// title.
func (c *Client) AddRemoteStorage(ctx context.Context, storage apimodels.RemoteStorage) error {
	req := apimodels.RemoteStorageRequest{Storage: storage}
	return c.put(ctx, remoteStoragesPath, &req, nil)
}

// RemoveRemoteStorage unregisters a remote DICOM storage server. The
// endpoint only speaks GET and PUT, so the removal is a PUT marked with
// type=remove.
func (c *Client) RemoveRemoteStorage(ctx context.Context, storage apimodels.RemoteStorage) error {
	req := apimodels.RemoteStorageRequest{Storage: storage, Remove: true}
	return c.put(ctx, remoteStoragesPath, &req, nil)
}
