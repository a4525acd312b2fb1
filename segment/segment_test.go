//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefault(t *testing.T) *English {
	t.Helper()
	e, err := Default()
	require.NoError(t, err)
	return e
}

func TestSentences(t *testing.T) {
	e := mustDefault(t)
	got := e.Sentences("The cat sat down. The dog barked loudly! Did the bird sing?")
	assert.Equal(t, []string{
		"The cat sat down.",
		"The dog barked loudly!",
		"Did the bird sing?",
	}, got)
}

func TestSentencesEmpty(t *testing.T) {
	e := mustDefault(t)
	assert.Empty(t, e.Sentences(""))
	assert.Empty(t, e.Sentences("   \n\t"))
	assert.Empty(t, e.Words(""))
}

func TestDefaultIsShared(t *testing.T) {
	a := mustDefault(t)
	b := mustDefault(t)
	assert.Same(t, a, b)
}

func TestWords(t *testing.T) {
	e := mustDefault(t)
	tests := []struct {
		in   string
		want []string
	}{
		{"It's a test.", []string{"It", "'s", "a", "test", "."}},
		{"Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"I have 3 apples.", []string{"I", "have", "3", "apples", "."}},
		{"We don't know (yet).", []string{"We", "don't", "know", "(yet", ")", "."}},
		{"Prices rose 50% today", []string{"Prices", "rose", "50", "%", "today"}},
		{"They'll go; we'd stay.", []string{"They", "'ll", "go", ";", "we", "'d", "stay", "."}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Words(tt.in))
		})
	}
}

func TestWordsJoinRoundTrip(t *testing.T) {
	e := mustDefault(t)
	for _, s := range []string{
		"It's a test.",
		"Hello, world!",
		"She said: yes, of course.",
		"The dogs' bowls are empty.",
		"Prices rose 50% today.",
	} {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, Join(e.Words(s)))
		})
	}
}

// Tokens that start with punctuation lose their leading space on Join.
func TestWordsJoinLeadingPunctuation(t *testing.T) {
	e := mustDefault(t)
	tests := []struct {
		in, want string
	}{
		{`He said "hello" loudly.`, `He said"hello" loudly.`},
		{"It costs $5 (roughly) today.", "It costs$5(roughly) today."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(e.Words(tt.in)))
		})
	}
}

func TestWordsNormalizesToNFC(t *testing.T) {
	e := mustDefault(t)
	decomposed := "café"
	assert.Equal(t, []string{"café"}, e.Words(decomposed))
}
