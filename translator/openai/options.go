//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"net/http"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

// HTTPClient is the interface for the HTTP client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

var defaultOptions = options{
	systemPrompt: translator.DefaultSystemPrompt,
}

type options struct {
	apiKey       string
	baseURL      string
	httpClient   HTTPClient
	systemPrompt string
	temperature  *float64
}

// Option configures the translator.
type Option func(*options)

// WithAPIKey sets the API key. OPENAI_API_KEY is used when unset.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithSystemPrompt replaces the default translator instructions.
func WithSystemPrompt(prompt string) Option {
	return func(o *options) {
		o.systemPrompt = prompt
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(o *options) {
		o.temperature = &temperature
	}
}
