// Package config loads HTTP client configuration from YAML files and
// environment variables.
//
// A ClientConfig is the file shape of an httpclient.Config: base URL,
// default timeout and headers, retry policy, TLS settings, and logging
// options as plain serializable fields. Load fills it from a config.yml
// and .env file, Validate checks it with struct tags, and Build
// materializes the runtime httpclient.Config.
//
// # Usage
//
//	var fc config.ClientConfig
//	if err := config.Load("payments", &fc); err != nil {
//	    return err
//	}
//	cfg, err := fc.Build()
//	if err != nil {
//	    return err
//	}
//	client, err := httpclient.New(cfg)
//
// Environment variables override file values using dotted-key variants,
// e.g. RETRY_MAX_RETRY_COUNT maps onto retry.max_retry_count.
package config
