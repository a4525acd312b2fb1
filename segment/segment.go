//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package segment splits text into sentences and words and joins word
// sequences back into text.
package segment

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
	"golang.org/x/text/unicode/norm"
)

// Segmenter splits text into sentences and words. Implementations must be
// deterministic for a given input.
type Segmenter interface {
	Sentences(text string) []string
	Words(text string) []string
}

// English segments English text with the Punkt sentence model and a
// treebank-style word tokenizer.
type English struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var (
	englishOnce sync.Once
	english     *English
	englishErr  error
)

// Default returns the shared English segmenter, loading the Punkt model on first use.
func Default() (*English, error) {
	englishOnce.Do(func() {
		english, englishErr = NewEnglish()
	})
	return english, englishErr
}

// NewEnglish loads the bundled English Punkt training data.
func NewEnglish() (*English, error) {
	b, err := sentencesdata.Asset("data/english.json")
	if err != nil {
		return nil, fmt.Errorf("load english punkt data: %w", err)
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, fmt.Errorf("parse english punkt data: %w", err)
	}
	return &English{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

// Sentences returns the sentences of text in order, trimmed and non-empty.
func (e *English) Sentences(text string) []string {
	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	raw := e.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		for _, s := range splitLeadingPeriods(strings.TrimSpace(sent.Text)) {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Words returns the word tokens of text, sentence by sentence.
func (e *English) Words(text string) []string {
	var out []string
	for _, sent := range e.Sentences(text) {
		out = append(out, tokenizeWords(sent)...)
	}
	return out
}

// splitLeadingPeriods emits standalone leading periods as their own sentences,
// the way NLTK's Punkt does for ". ." runs.
func splitLeadingPeriods(s string) []string {
	var out []string
	for {
		s = strings.TrimLeft(s, " \t\n\r\v\f")
		if s == "" || s[0] != '.' {
			break
		}
		if len(s) > 1 && !strings.ContainsRune(" \t\n\r\v\f", rune(s[1])) {
			break
		}
		out = append(out, ".")
		s = s[1:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
