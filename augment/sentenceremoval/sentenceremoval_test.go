//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package sentenceremoval

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-augment-go/augment"
)

type pipeSegmenter struct{}

func (pipeSegmenter) Sentences(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "|")
}

func (pipeSegmenter) Words(text string) []string { return strings.Fields(text) }

func TestNewValidation(t *testing.T) {
	_, err := New(WithNumSentences(-1), WithSegmenter(pipeSegmenter{}))
	assert.ErrorIs(t, err, augment.ErrConfiguration)
	_, err = New(WithProbability(1.2), WithSegmenter(pipeSegmenter{}))
	assert.ErrorIs(t, err, augment.ErrConfiguration)
}

func TestTransformRemovesK(t *testing.T) {
	s, err := New(WithNumSentences(2), WithSegmenter(pipeSegmenter{}), WithSeed(4))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		out, err := s.Transform(context.Background(), "a|b|c|d|e")
		require.NoError(t, err)
		got := strings.Split(out, " ")
		require.Len(t, got, 3)
		assert.IsIncreasing(t, got)
	}
}

func TestTransformWipesShortText(t *testing.T) {
	s, err := New(WithNumSentences(3), WithSegmenter(pipeSegmenter{}))
	require.NoError(t, err)
	for _, text := range []string{"a|b|c", "a|b", ""} {
		out, err := s.Transform(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, "", out, text)
	}
}

func TestTransformZeroKeepsAll(t *testing.T) {
	s, err := New(WithNumSentences(0), WithSegmenter(pipeSegmenter{}))
	require.NoError(t, err)
	out, err := s.Transform(context.Background(), "a|b|c")
	require.NoError(t, err)
	assert.Equal(t, "a b c", out)
}

func TestApplyProbabilityBounds(t *testing.T) {
	ctx := context.Background()
	never, err := New(WithProbability(0), WithSegmenter(pipeSegmenter{}))
	require.NoError(t, err)
	out, err := never.ApplyOne(ctx, "a|b")
	require.NoError(t, err)
	assert.Equal(t, "a|b", out)

	always, err := New(WithProbability(1), WithSegmenter(pipeSegmenter{}), WithSeed(1))
	require.NoError(t, err)
	out, err = always.ApplyOne(ctx, "a|b")
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, out)
}

func TestDefaultSegmenter(t *testing.T) {
	s, err := New(WithProbability(1), WithSeed(5))
	require.NoError(t, err)
	out, err := s.ApplyOne(context.Background(), "The cat sat. The dog ran. The bird flew.")
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, ". "), 2)
}
