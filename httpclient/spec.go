package httpclient

// QueryParam is one URL query parameter. Parameters are kept as a slice so
// the builder encodes them in the order the spec provides them.
type QueryParam struct {
	Key   string
	Value string
}

// Definition is the resolved description of one outbound call. Path and
// method are always present; the optional fields default to absent.
type Definition struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if BaseURL
	// is empty.
	Path string
	// Headers are request-specific headers; on key collision they override
	// the configuration's common headers.
	Headers map[string]string
	// Query are URL query parameters, encoded in order.
	Query []QueryParam
	// Body is the raw request body. Encoding is the caller's concern; the
	// pipeline treats it as opaque bytes.
	Body []byte
}

// Spec describes an outbound call. Resolving the definition must not perform
// I/O. Implementations are either one type per endpoint or a single type
// grouping related endpoints with per-case behavior; both shapes must
// produce identical wire requests for identical inputs.
type Spec interface {
	Definition() Definition
}

// Endpoint is the canonical per-endpoint Spec: a Definition that describes
// itself. Construct one directly or through NewEndpoint.
type Endpoint Definition

// Definition implements Spec.
func (e Endpoint) Definition() Definition {
	return Definition(e)
}

// EndpointOption configures an Endpoint under construction.
type EndpointOption func(*Endpoint)

// WithHeader adds a request-specific header.
func WithHeader(key, value string) EndpointOption {
	return func(e *Endpoint) {
		if e.Headers == nil {
			e.Headers = make(map[string]string)
		}
		e.Headers[key] = value
	}
}

// WithQuery appends a query parameter. Parameters are encoded in the order
// they are added.
func WithQuery(key, value string) EndpointOption {
	return func(e *Endpoint) {
		e.Query = append(e.Query, QueryParam{Key: key, Value: value})
	}
}

// WithBody sets the raw request body.
func WithBody(body []byte) EndpointOption {
	return func(e *Endpoint) {
		e.Body = body
	}
}

// NewEndpoint creates an Endpoint for the given method and path.
func NewEndpoint(method, path string, opts ...EndpointOption) Endpoint {
	e := Endpoint{Method: method, Path: path}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
