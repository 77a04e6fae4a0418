package apimodels

import "github.com/Masterminds/semver"

// VersionResponse is the server's reported version.
type VersionResponse struct {
	Version string `json:"version"`
}

// Semver parses the reported version. Servers built from development trees
// report strings semver cannot parse; those come back as nil with the raw
// string still available in Version.
func (r *VersionResponse) Semver() *semver.Version {
	v, err := semver.NewVersion(r.Version)
	if err != nil {
		return nil
	}
	return v
}

// WebUIPlugin describes one web UI plugin package advertised by the server.
type WebUIPlugin struct {
	Name       string `json:"name"`
	SlotID     string `json:"slot-id"`
	ModuleFile string `json:"module-file"`
	Caption    string `json:"caption,omitempty"`
}

// WebUIPluginsResponse lists the plugins for a slot.
type WebUIPluginsResponse struct {
	Plugins []WebUIPlugin `json:"plugins"`
}

// GetWebUIPluginsRequest lists web UI plugins, optionally filtered by slot.
type GetWebUIPluginsRequest struct {
	BaseGetRequest

	SlotID string
}

func (o *GetWebUIPluginsRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseGetRequest.ToHTTPRequest()
	if o.SlotID != "" {
		r.Params.Set("slot-id", o.SlotID)
	}
	return r
}
