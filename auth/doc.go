// Package auth provides request adapters that inject credentials into
// outbound wire requests: bearer tokens, basic auth, API keys, and
// token-source-backed adapters that fetch a fresh credential on every
// attempt (so retried attempts carry refreshed tokens).
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Adapter: auth.Bearer("my-token"),
//	})
//
// For short-lived credentials, back the adapter with a token source:
//
//	src := auth.NewRefreshingJWT(fetchToken, 30*time.Second)
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Adapter: auth.FromSource(src),
//	})
package auth
