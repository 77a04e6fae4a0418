package apimodels

// TaskInfo describes one server-side asynchronous task, typically an
// indexing run. Tasks are created by the server and only observed here.
type TaskInfo struct {
	TaskUID  string `json:"taskUid"`
	TaskName string `json:"taskName"`

	// TaskProgress is in [0,1]; a negative value means the server cannot
	// estimate progress.
	TaskProgress float64 `json:"taskProgress"`

	Complete bool `json:"complete,omitempty"`

	// Only present once the task is complete.
	ElapsedTimeMs int64 `json:"elapsedTime,omitempty"`
	NIndexed      int   `json:"nIndexed,omitempty"`
	NErrors       int   `json:"nErrors,omitempty"`
}

// ListTasksResponse is the current task list and its size.
type ListTasksResponse struct {
	Tasks []TaskInfo `json:"results"`
	Count int        `json:"count"`
}

// TaskActionRequest closes a completed task or stops a running one.
type TaskActionRequest struct {
	BaseRequest

	UID string
	// Type is "close" or "stop".
	Type string
}

func (o *TaskActionRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	r.Params.Set("uid", o.UID)
	r.Params.Set("action", "delete")
	r.Params.Set("type", o.Type)
	return r
}

// IndexRequest creates an indexing (or unindexing, or removal) task over one
// or more item URIs.
type IndexRequest struct {
	BaseRequest

	URIs []string
	// Provider optionally names the index provider the task should target.
	Provider string
}

func (o *IndexRequest) ToHTTPRequest() *HTTPRequest {
	r := o.BaseRequest.ToHTTPRequest()
	for _, uri := range o.URIs {
		r.Params.Add("uri", uri)
	}
	if o.Provider != "" {
		r.Params.Set("plugin", o.Provider)
	}
	return r
}
