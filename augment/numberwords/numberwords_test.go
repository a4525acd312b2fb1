//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package numberwords

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-augment-go/augment"
)

func TestDigitsToWords(t *testing.T) {
	n, err := New(WithProbability(1), WithLevel(augment.LevelText))
	require.NoError(t, err)
	out, err := n.ApplyOne(context.Background(), "I have 3 apples")
	require.NoError(t, err)
	assert.Equal(t, "I have three apples", out)
}

func TestWordsToDigits(t *testing.T) {
	n, err := New(WithProbability(1))
	require.NoError(t, err)
	out, err := n.ApplyOne(context.Background(), "I have three apples")
	require.NoError(t, err)
	assert.Equal(t, "I have 3 apples", out)
}

func TestHyphenatedAndPunctuated(t *testing.T) {
	n, err := New(WithProbability(1))
	require.NoError(t, err)
	out, err := n.Transform(context.Background(), "She is twenty-one, he is 42.")
	require.NoError(t, err)
	assert.Equal(t, "She is 21, he is forty-two.", out)
}

func TestNoNumbersKeepsText(t *testing.T) {
	n, err := New(WithProbability(1))
	require.NoError(t, err)
	const text = "Nothing  numeric   here ."
	out, err := n.Transform(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

func TestProbabilityZero(t *testing.T) {
	for _, level := range []augment.Level{augment.LevelText, augment.LevelWord} {
		n, err := New(WithProbability(0), WithLevel(level))
		require.NoError(t, err)
		out, err := n.ApplyOne(context.Background(), "I have 3 apples")
		require.NoError(t, err)
		assert.Equal(t, "I have 3 apples", out)
	}
}

func TestWordLevelConvertsSomeTokens(t *testing.T) {
	n, err := New(WithProbability(0.5), WithLevel(augment.LevelWord), WithSeed(21))
	require.NoError(t, err)
	outcomes := map[string]bool{}
	for i := 0; i < 100; i++ {
		out, err := n.ApplyOne(context.Background(), "1 2")
		require.NoError(t, err)
		outcomes[out] = true
	}
	assert.Equal(t, map[string]bool{"1 2": true, "one 2": true, "1 two": true, "one two": true}, outcomes)
}

func TestNewValidation(t *testing.T) {
	_, err := New(WithLevel(augment.LevelSentence))
	assert.ErrorIs(t, err, augment.ErrConfiguration)
}
