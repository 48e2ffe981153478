// Package observability provides ready-made pipeline hooks: a zerolog
// response interceptor, a request-ID adapter, and an OpenTelemetry tracing
// transport decorator.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL:     "https://api.example.com",
//	    Adapter:     observability.RequestIDAdapter(),
//	    Interceptor: observability.LogInterceptor(log),
//	    Transport:   observability.NewTracingTransport(transport.Default()),
//	})
//
// The tracing transport records through the OpenTelemetry API only; wiring
// an exporter/SDK is the embedding application's concern.
package observability
