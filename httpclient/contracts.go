package httpclient

import (
	"context"

	"github.com/megastudymobile/networkkit/transport"
)

// Adapter mutates the wire request before it is sent, e.g. to inject
// credentials. It may suspend (fetch a token); it runs exactly once per
// attempt, including retried attempts, so a refreshed token is applied on
// each retry. An adapter failure aborts the attempt and is surfaced as-is,
// never retried.
type Adapter interface {
	Adapt(ctx context.Context, req *transport.Request) (*transport.Request, error)
}

// AdapterFunc adapts a function to the Adapter interface.
type AdapterFunc func(ctx context.Context, req *transport.Request) (*transport.Request, error)

// Adapt implements Adapter.
func (f AdapterFunc) Adapt(ctx context.Context, req *transport.Request) (*transport.Request, error) {
	return f(ctx, req)
}

// Interceptor observes the raw response after a successful transport call
// and before validation. It must not mutate the response. An interceptor
// failure aborts the attempt and is surfaced as-is, never retried.
type Interceptor interface {
	Observe(ctx context.Context, resp *transport.Response) error
}

// InterceptorFunc adapts a function to the Interceptor interface.
type InterceptorFunc func(ctx context.Context, resp *transport.Response) error

// Observe implements Interceptor.
func (f InterceptorFunc) Observe(ctx context.Context, resp *transport.Response) error {
	return f(ctx, resp)
}

// ChainAdapters composes adapters into one, applied left to right. The
// configuration holds a single adapter slot; composition happens before
// client construction. Nil entries are skipped.
func ChainAdapters(adapters ...Adapter) Adapter {
	return AdapterFunc(func(ctx context.Context, req *transport.Request) (*transport.Request, error) {
		var err error
		for _, a := range adapters {
			if a == nil {
				continue
			}
			req, err = a.Adapt(ctx, req)
			if err != nil {
				return nil, err
			}
		}
		return req, nil
	})
}

// ChainInterceptors composes interceptors into one, run left to right. The
// first failure stops the chain. Nil entries are skipped.
func ChainInterceptors(interceptors ...Interceptor) Interceptor {
	return InterceptorFunc(func(ctx context.Context, resp *transport.Response) error {
		for _, i := range interceptors {
			if i == nil {
				continue
			}
			if err := i.Observe(ctx, resp); err != nil {
				return err
			}
		}
		return nil
	})
}
