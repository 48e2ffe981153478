// Package errors defines the closed set of failure kinds produced by the
// networkkit request pipeline.
//
// Every failure surfaced by the pipeline is an *Error carrying one of five
// kinds: invalid URL, invalid response, HTTP status failure, decoding
// failure, or transport failure. The kind drives retry decisions and lets
// callers branch without string matching:
//
//	resp, err := httpclient.Execute[User](ctx, client, spec)
//	if errors.IsHTTP(err) {
//	    log.Printf("server said %d", errors.StatusCode(err))
//	}
package errors
