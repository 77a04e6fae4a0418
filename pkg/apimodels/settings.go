package apimodels

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

// Indexer settings field names as the server knows them.
const (
	IndexerFieldPath          = "path"
	IndexerFieldZip           = "zip"
	IndexerFieldEffort        = "effort"
	IndexerFieldThumbnail     = "thumbnail"
	IndexerFieldThumbnailSize = "thumbnailSize"
	IndexerFieldWatcher       = "watcher"
)

var knownIndexerFields = map[string]struct{}{
	IndexerFieldPath:          {},
	IndexerFieldZip:           {},
	IndexerFieldEffort:        {},
	IndexerFieldThumbnail:     {},
	IndexerFieldThumbnailSize: {},
	IndexerFieldWatcher:       {},
}

// IsKnownIndexerField reports whether the field name is one the client knows
// about. Unknown names are still sent on bulk updates, since newer servers
// may have grown fields this client predates.
func IsKnownIndexerField(field string) bool {
	_, ok := knownIndexerFields[field]
	return ok
}

// IndexerSettings is the flat record of indexing options. Older servers emit
// the numeric fields as JSON strings; decoding coerces them.
type IndexerSettings struct {
	Path          string `json:"path"`
	Zip           bool   `json:"zip"`
	Effort        int    `json:"effort"`
	Thumbnail     bool   `json:"thumbnail"`
	ThumbnailSize int    `json:"thumbnailSize"`
	Watcher       bool   `json:"watcher"`
}

func (s *IndexerSettings) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	for field, value := range raw {
		switch field {
		case IndexerFieldPath:
			s.Path = fmt.Sprint(value)
		case IndexerFieldZip:
			s.Zip, err = CoerceBool(value)
		case IndexerFieldEffort:
			s.Effort, err = CoerceInt(value)
		case IndexerFieldThumbnail:
			s.Thumbnail, err = CoerceBool(value)
		case IndexerFieldThumbnailSize:
			s.ThumbnailSize, err = CoerceInt(value)
		case IndexerFieldWatcher:
			s.Watcher, err = CoerceBool(value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CoerceBool reads a boolean that legacy servers may deliver as the literal
// strings "true"/"false".
func CoerceBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strings.TrimSpace(v) == "true", nil
	default:
		return false, dgerrors.New("expected a boolean, got %T (%v)", value, value).
			WithCode(dgerrors.CodeInvalidServerOutput)
	}
}

// CoerceInt reads an integer that legacy servers may deliver as a JSON
// string or (per encoding/json) a float64.
func CoerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, dgerrors.Wrap(err, "expected a number, got %q", v).
				WithCode(dgerrors.CodeInvalidServerOutput)
		}
		return n, nil
	default:
		return 0, dgerrors.New("expected a number, got %T (%v)", value, value).
			WithCode(dgerrors.CodeInvalidServerOutput)
	}
}

// FormatParamValue renders a settings value for transmission as a query
// parameter.
func FormatParamValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", dgerrors.New("unsupported settings value of type %T", value).
			WithCode(dgerrors.CodeValidation)
	}
}

// SetSettingsRequest sends a set of named settings values as query
// parameters, used for the indexer and Query/Retrieve settings endpoints.
type SetSettingsRequest struct {
	BaseRequest

	Fields map[string]string
}

func (o *SetSettingsRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	for k, v := range o.Fields {
		r.Params.Set(k, v)
	}
	return r
}

// TransferOption is one toggle of a transfer syntax.
type TransferOption struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// TransferSyntax is one transfer syntax and its option toggles.
type TransferSyntax struct {
	UID     string           `json:"uid"`
	SOPName string           `json:"sop_name"`
	Options []TransferOption `json:"options"`
}

// SetTransferOptionRequest flips one option of one transfer syntax.
type SetTransferOptionRequest struct {
	BaseRequest

	UID    string
	Option string
	Value  bool
}

func (o *SetTransferOptionRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	r.Params.Set("uid", o.UID)
	r.Params.Set("option", o.Option)
	r.Params.Set("value", strconv.FormatBool(o.Value))
	return r
}
