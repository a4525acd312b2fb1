//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/translator"
	"trpc.group/trpc-go/trpc-augment-go/translator/gemini"
	"trpc.group/trpc-go/trpc-augment-go/translator/google"
	"trpc.group/trpc-go/trpc-augment-go/translator/openai"
)

// defaultModels are used when --model is not set.
var defaultModels = map[string]string{
	"openai": "gpt-4o-mini",
	"gemini": "gemini-2.0-flash",
}

func modelFor(backend, model string) string {
	if model != "" {
		return model
	}
	return defaultModels[backend]
}

// newTranslator builds the backend named by the --translator flag. Build
// failures are configuration errors and are never retried.
func newTranslator(ctx context.Context, backend, model string) (translator.Translator, error) {
	model = modelFor(backend, model)
	switch backend {
	case "openai":
		return openai.New(model), nil
	case "gemini":
		t, err := gemini.New(ctx, model)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, augment.ErrConfiguration)
		}
		return t, nil
	case "google":
		return google.New(), nil
	default:
		return nil, fmt.Errorf("unknown translator %q: %w", backend, augment.ErrConfiguration)
	}
}
