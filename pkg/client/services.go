package client

import (
	"context"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
)

// Service is a handle on one of the archive's controllable DICOM services.
type Service struct {
	client *Client
	path   string
}

// Storage returns a handle on the DICOM Storage service.
func (c *Client) Storage() *Service {
	return &Service{client: c, path: storageServicePath}
}

// QueryRetrieve returns a handle on the DICOM Query/Retrieve service.
func (c *Client) QueryRetrieve() *Service {
	return &Service{client: c, path: queryServicePath}
}

// Status reads the service's running state and configuration.
func (s *Service) Status(ctx context.Context) (*apimodels.ServiceStatus, error) {
	var resp apimodels.ServiceStatus
	if err := s.client.get(ctx, s.path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Configure updates the service configuration. Only the fields set in the
// partial settings are transmitted; the rest stay as they are server-side.
func (s *Service) Configure(ctx context.Context, settings apimodels.ServiceSettings) error {
	req := apimodels.ConfigureServiceRequest{Settings: settings}
	return s.client.post(ctx, s.path, &req, nil)
}

// Start starts the service.
func (s *Service) Start(ctx context.Context) error {
	req := apimodels.StartStopServiceRequest{Running: true}
	return s.client.post(ctx, s.path, &req, nil)
}

// Stop stops the service.
func (s *Service) Stop(ctx context.Context) error {
	req := apimodels.StartStopServiceRequest{Running: false}
	return s.client.post(ctx, s.path, &req, nil)
}
