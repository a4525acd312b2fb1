//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package openai provides a translator backed by OpenAI-compatible chat models.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

// Translator asks a chat completion model for translations.
type Translator struct {
	client       openai.Client
	name         string
	systemPrompt string
	temperature  *float64
}

// New creates a translator using the chat model name.
func New(name string, opts ...Option) *Translator {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	if val, ok := os.LookupEnv("OPENAI_API_KEY"); ok && o.apiKey == "" {
		o.apiKey = val
	}
	if val, ok := os.LookupEnv("OPENAI_BASE_URL"); ok && o.baseURL == "" {
		o.baseURL = val
	}

	var clientOpts []openaiopt.RequestOption
	if o.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(o.apiKey))
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(o.baseURL))
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, openaiopt.WithHTTPClient(o.httpClient))
	} else {
		clientOpts = append(clientOpts, openaiopt.WithHTTPClient(http.DefaultClient))
	}
	clientOpts = append(clientOpts, openaiopt.WithMaxRetries(0))

	return &Translator{
		client:       openai.NewClient(clientOpts...),
		name:         name,
		systemPrompt: o.systemPrompt,
		temperature:  o.temperature,
	}
}

// Translate implements translator.Translator with one non-streaming completion.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.name),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(t.systemPrompt),
			openai.UserMessage(translator.UserPrompt(text, source, target)),
		},
	}
	if t.temperature != nil {
		params.Temperature = openai.Float(*t.temperature)
	}
	resp, err := t.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai model %s: %w", t.name, translator.ErrEmptyResponse)
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openai model %s: %w", t.name, translator.ErrEmptyResponse)
	}
	return out, nil
}
