//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package gemini provides a translator backed by Google Gemini models.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

// Translator asks a Gemini model for translations.
type Translator struct {
	client       Client
	name         string
	systemPrompt string
	temperature  *float32
}

// New creates a translator for the Gemini model name.
func New(ctx context.Context, name string, opts ...Option) (*Translator, error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	client := o.client
	if client == nil {
		var cfg genai.ClientConfig
		if o.clientConfig != nil {
			cfg = *o.clientConfig
		}
		c, err := genai.NewClient(ctx, &cfg)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		client = &clientWrapper{client: c}
	}
	return &Translator{
		client:       client,
		name:         name,
		systemPrompt: o.systemPrompt,
		temperature:  o.temperature,
	}, nil
}

// Translate implements translator.Translator.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(t.systemPrompt, genai.RoleUser),
		Temperature:       t.temperature,
	}
	contents := []*genai.Content{
		genai.NewContentFromText(translator.UserPrompt(text, source, target), genai.RoleUser),
	}
	resp, err := t.client.Models().GenerateContent(ctx, t.name, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini model %s: %w", t.name, translator.ErrEmptyResponse)
	}
	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("gemini model %s: %w", t.name, translator.ErrEmptyResponse)
	}
	return out, nil
}
