// Package httpclient implements the typed HTTP request pipeline: a request
// specification plus a shared configuration is built into a wire request,
// run through optional adapter/interceptor hooks, executed over a transport,
// validated, decoded, and retried on recoverable failure.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	})
//
//	todo, err := httpclient.Get[Todo](ctx, client, "/todos/1")
//
// # Declaring Endpoints
//
// A request specification is anything implementing Spec. The Endpoint value
// type covers the one-type-per-call shape:
//
//	spec := httpclient.NewEndpoint(http.MethodGet, "/todos/1")
//	todo, err := httpclient.Execute[Todo](ctx, client, spec)
//
// Related calls can also be grouped into one type whose Definition method
// switches per case; both shapes build identical wire requests.
//
// # With Retry
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Retry:   retry.DefaultPolicy(),
//	})
//
// Per attempt the pipeline runs build → adapt → send → observe → validate →
// decode, strictly in that order. The adapter runs on every attempt,
// including retries, so refreshed credentials are applied each time.
package httpclient
