//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package google provides a translator backed by the Google Cloud
// Translation v2 REST API.
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/tidwall/gjson"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

const (
	// DefaultEndpoint is the public Translation API host.
	DefaultEndpoint = "https://translation.googleapis.com"
	translatePath   = "/language/translate/v2"
	apiKeyEnv       = "GOOGLE_TRANSLATE_API_KEY"
)

// Translator calls the Translation v2 API.
type Translator struct {
	apiKey     string
	endpoint   string
	httpClient HTTPClient
}

// New creates a Translation API client.
func New(opts ...Option) *Translator {
	o := options{endpoint: DefaultEndpoint}
	for _, opt := range opts {
		opt(&o)
	}
	if val, ok := os.LookupEnv(apiKeyEnv); ok && o.apiKey == "" {
		o.apiKey = val
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}
	return &Translator{apiKey: o.apiKey, endpoint: o.endpoint, httpClient: o.httpClient}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// Translate implements translator.Translator.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	body, err := json.Marshal(translateRequest{Q: text, Source: source, Target: target, Format: "text"})
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}
	u := t.endpoint + translatePath
	if t.apiKey != "" {
		u += "?key=" + url.QueryEscape(t.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := gjson.GetBytes(raw, "error.message").String()
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("google translate: status %d: %s", resp.StatusCode, msg)
	}
	res := gjson.GetBytes(raw, "data.translations.0.translatedText")
	if !res.Exists() || res.String() == "" {
		return "", fmt.Errorf("google translate %s->%s: %w", source, target, translator.ErrEmptyResponse)
	}
	return res.String(), nil
}
