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
	"context"

	"google.golang.org/genai"
)

// Client is the subset of the GenAI client used for translation.
type Client interface {
	Models() Models
}

// Models generates content with a named model.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// clientWrapper implements Client
type clientWrapper struct {
	client *genai.Client
}

// Models implements Client.Models
func (c *clientWrapper) Models() Models {
	return c.client.Models
}
