package apimodels

import (
	"encoding/json"
	"strconv"
)

// ServiceStatus is the state of one of the archive's DICOM services
// (Storage or Query/Retrieve). Legacy servers name the running flag
// "running" while modern ones use "isRunning"; both are accepted and exposed
// as IsRunning.
type ServiceStatus struct {
	IsRunning bool `json:"isRunning"`
	Autostart bool `json:"autostart"`
	Port      int  `json:"port"`
}

func (s *ServiceStatus) UnmarshalJSON(data []byte) error {
	var wire struct {
		IsRunning *bool       `json:"isRunning"`
		Running   *bool       `json:"running"`
		Autostart bool        `json:"autostart"`
		Port      interface{} `json:"port"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch {
	case wire.IsRunning != nil:
		s.IsRunning = *wire.IsRunning
	case wire.Running != nil:
		s.IsRunning = *wire.Running
	}
	s.Autostart = wire.Autostart
	if wire.Port != nil {
		port, err := CoerceInt(wire.Port)
		if err != nil {
			return err
		}
		s.Port = port
	}
	return nil
}

// ServiceSettings is a partial service configuration; only the fields that
// are set are transmitted, leaving the rest untouched server-side.
type ServiceSettings struct {
	Autostart *bool
	Port      *int
}

// ConfigureServiceRequest updates a service's configuration.
type ConfigureServiceRequest struct {
	BaseRequest

	Settings ServiceSettings
}

func (o *ConfigureServiceRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	if o.Settings.Autostart != nil {
		r.Params.Set("autostart", strconv.FormatBool(*o.Settings.Autostart))
	}
	if o.Settings.Port != nil {
		r.Params.Set("port", strconv.Itoa(*o.Settings.Port))
	}
	return r
}

// StartStopServiceRequest starts or stops a service.
type StartStopServiceRequest struct {
	BaseRequest

	Running bool
}

func (o *StartStopServiceRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	r.Params.Set("running", strconv.FormatBool(o.Running))
	return r
}
