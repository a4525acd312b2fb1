//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package numwords converts between integers and English cardinal words.
package numwords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotNumber is returned by ToNumber when the input is not a number phrase.
var ErrNotNumber = errors.New("numwords: not a number")

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

type scale struct {
	value uint64
	name  string
}

var scales = []scale{
	{1_000_000_000_000_000_000, "quintillion"},
	{1_000_000_000_000_000, "quadrillion"},
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
	{1, ""},
}

// ToWords spells n in British English, e.g. 1234 becomes
// "one thousand, two hundred and thirty-four".
func ToWords(n int64) string {
	if n < 0 {
		// -(n+1) keeps math.MinInt64 in range.
		return "minus " + spell(uint64(-(n+1))+1)
	}
	return spell(uint64(n))
}

func spell(n uint64) string {
	if n == 0 {
		return ones[0]
	}
	var b strings.Builder
	rest := n
	for _, sc := range scales {
		g := rest / sc.value
		rest %= sc.value
		if g == 0 {
			continue
		}
		if b.Len() > 0 {
			if g*sc.value+rest < 100 {
				b.WriteString(" and ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(spellHundreds(g))
		if sc.name != "" {
			b.WriteString(" ")
			b.WriteString(sc.name)
		}
	}
	return b.String()
}

func spellHundreds(n uint64) string {
	h, r := n/100, n%100
	switch {
	case h == 0:
		return spellTens(r)
	case r == 0:
		return ones[h] + " hundred"
	default:
		return ones[h] + " hundred and " + spellTens(r)
	}
}

func spellTens(n uint64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + "-" + ones[n%10]
}

var (
	smallValues = map[string]int64{}
	scaleValues = map[string]int64{
		"thousand": 1_000,
		"million":  1_000_000,
		"billion":  1_000_000_000,
		"trillion": 1_000_000_000_000,
	}
)

func init() {
	for i, w := range ones {
		smallValues[w] = int64(i)
	}
	for i, w := range tens {
		if w != "" {
			smallValues[w] = int64(i * 10)
		}
	}
}

// ToNumber parses an English cardinal phrase such as "twenty-one" or
// "one hundred and five". Hyphens, commas and "and" are ignored.
func ToNumber(s string) (int64, error) {
	fields := strings.Fields(strings.NewReplacer("-", " ", ",", " ").Replace(strings.ToLower(s)))
	var (
		total, current int64
		negative, seen bool
	)
	for i, w := range fields {
		switch {
		case w == "and":
			continue
		case (w == "minus" || w == "negative") && i == 0:
			negative = true
		case w == "hundred":
			if current == 0 {
				current = 1
			}
			current *= 100
			seen = true
		default:
			if v, ok := smallValues[w]; ok {
				current += v
				seen = true
				continue
			}
			v, ok := scaleValues[w]
			if !ok {
				return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
			}
			if current == 0 {
				current = 1
			}
			total += current * v
			current = 0
			seen = true
		}
	}
	if !seen {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
	}
	total += current
	if negative {
		total = -total
	}
	return total, nil
}
