// Package transport defines the wire-level boundary of the networkkit
// pipeline: the fully resolved Request and raw Response types, the Transport
// interface, and the default net/http implementation.
//
// Transport is the only pipeline component that performs real I/O; every
// other component is pure or calls injected collaborators, so tests can
// substitute a fake transport wholesale:
//
//	type stub struct{}
//
//	func (stub) Send(ctx context.Context, req *transport.Request) (*transport.Response, error) {
//	    return &transport.Response{StatusCode: 200, Body: []byte(`{}`)}, nil
//	}
package transport
