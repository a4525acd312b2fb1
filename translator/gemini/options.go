//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package gemini

import (
	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

var defaultOptions = options{
	clientConfig: &genai.ClientConfig{Backend: genai.BackendGeminiAPI},
	systemPrompt: translator.DefaultSystemPrompt,
}

type options struct {
	clientConfig *genai.ClientConfig
	client       Client
	systemPrompt string
	temperature  *float32
}

// Option configures the translator.
type Option func(*options)

// WithClientConfig sets the GenAI client configuration. GOOGLE_API_KEY or
// GEMINI_API_KEY is read by the client when no key is set.
func WithClientConfig(config *genai.ClientConfig) Option {
	return func(o *options) {
		o.clientConfig = config
	}
}

// WithClient injects a prebuilt client.
func WithClient(c Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithSystemPrompt replaces the default translator instructions.
func WithSystemPrompt(prompt string) Option {
	return func(o *options) {
		o.systemPrompt = prompt
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float32) Option {
	return func(o *options) {
		o.temperature = genai.Ptr(temperature)
	}
}
