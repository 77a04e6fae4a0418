package apimodels

// Request is implemented by every request type that can be turned into an
// HTTP request.
type Request interface {
	ToHTTPRequest() *HTTPRequest
}

// BaseRequest is the base request used for all requests
type BaseRequest struct {
	Headers map[string]string
}

// ToHTTPRequest is used to convert the request to an HTTP request
func (o *BaseRequest) ToHTTPRequest() *HTTPRequest {
	r := NewHTTPRequest()
	for k, v := range o.Headers {
		r.Header.Set(k, v)
	}
	return r
}

// BaseGetRequest is the base request used for all get requests
type BaseGetRequest struct {
	BaseRequest
}

// compile time check for interface implementation
var _ Request = (*BaseRequest)(nil)
var _ Request = (*BaseGetRequest)(nil)
