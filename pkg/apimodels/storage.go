package apimodels

import "strconv"

// RemoteStorage is a remote DICOM storage server known to the archive, keyed
// by its AE title. The client holds no local copy of the set.
type RemoteStorage struct {
	AETitle     string `json:"aetitle"`
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	Description string `json:"description,omitempty"`
	Public      bool   `json:"public,omitempty"`
}

// RemoteStorageRequest adds or removes a remote storage server. The endpoint
// only speaks GET and PUT, so removal is a PUT carrying type=remove.
type RemoteStorageRequest struct {
	BaseRequest

	Storage RemoteStorage
	Remove  bool
}

func (o *RemoteStorageRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	r.Params.Set("aetitle", o.Storage.AETitle)
	r.Params.Set("ip", o.Storage.IP)
	r.Params.Set("port", strconv.Itoa(o.Storage.Port))
	if o.Storage.Description != "" {
		r.Params.Set("description", o.Storage.Description)
	}
	if o.Storage.Public {
		r.Params.Set("public", "true")
	}
	if o.Remove {
		r.Params.Set("type", "remove")
	}
	return r
}
