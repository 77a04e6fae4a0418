package client

import (
	"context"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
)

// Tasks is a handle on the server's asynchronous task list.
type Tasks struct {
	client *Client
}

// Tasks returns a handle on the task endpoints.
func (c *Client) Tasks() *Tasks {
	return &Tasks{client: c}
}

// List returns the currently visible tasks and their count.
func (t *Tasks) List(ctx context.Context) (*apimodels.ListTasksResponse, error) {
	var resp apimodels.ListTasksResponse
	if err := t.client.get(ctx, tasksPath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Close removes a completed task from the visible list. Closing a uid the
// server no longer knows is answered by the server, not masked here.
func (t *Tasks) Close(ctx context.Context, uid string) error {
	req := apimodels.TaskActionRequest{UID: uid, Type: "close"}
	return t.client.post(ctx, tasksPath, &req, nil)
}

// Stop requests cancellation of a running task.
func (t *Tasks) Stop(ctx context.Context, uid string) error {
	req := apimodels.TaskActionRequest{UID: uid, Type: "stop"}
	return t.client.post(ctx, tasksPath, &req, nil)
}
