//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package translator defines the external machine-translation capability
// used by back-translation.
package translator

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyResponse is returned when a backend answers without a translation.
var ErrEmptyResponse = errors.New("translator: empty response")

// Translator translates text between two language codes such as "en" and "fr".
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Func adapts a function to Translator.
type Func func(ctx context.Context, text, source, target string) (string, error)

// Translate implements Translator.
func (f Func) Translate(ctx context.Context, text, source, target string) (string, error) {
	return f(ctx, text, source, target)
}

var languageNames = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"hi": "Hindi",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"zh": "Chinese",
}

// LanguageName returns the English name of a language code, or the code
// itself when it is unknown.
func LanguageName(code string) string {
	base, _, _ := strings.Cut(strings.ToLower(code), "-")
	if name, ok := languageNames[base]; ok {
		return name
	}
	return code
}
