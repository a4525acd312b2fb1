//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package google

import "net/http"

// HTTPClient is the interface for the HTTP client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type options struct {
	apiKey     string
	endpoint   string
	httpClient HTTPClient
}

// Option configures the translator.
type Option func(*options)

// WithAPIKey sets the API key. GOOGLE_TRANSLATE_API_KEY is used when unset.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithEndpoint overrides the API host, e.g. for a proxy.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		o.httpClient = c
	}
}
