//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package numwords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{3, "three"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{100, "one hundred"},
		{105, "one hundred and five"},
		{999, "nine hundred and ninety-nine"},
		{1000, "one thousand"},
		{1005, "one thousand and five"},
		{1100, "one thousand, one hundred"},
		{1234, "one thousand, two hundred and thirty-four"},
		{2_000_300, "two million, three hundred"},
		{1_000_050, "one million and fifty"},
		{-7, "minus seven"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWords(tt.n))
		})
	}
}

func TestToWordsExtremes(t *testing.T) {
	assert.Contains(t, ToWords(math.MaxInt64), "quintillion")
	assert.Contains(t, ToWords(math.MinInt64), "minus nine quintillion")
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"three", 3},
		{"Three", 3},
		{"twenty-one", 21},
		{"hundred", 100},
		{"one hundred and five", 105},
		{"one thousand, two hundred and thirty-four", 1234},
		{"two million three hundred", 2_000_300},
		{"minus seven", -7},
		{"zero", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToNumberMiss(t *testing.T) {
	for _, in := range []string{"", "apples", "and", "minus", "three apples", "3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ToNumber(in)
			assert.ErrorIs(t, err, ErrNotNumber)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int64{1, 19, 42, 101, 999, 1001, 12_345, 1_000_000, 987_654_321} {
		got, err := ToNumber(ToWords(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
