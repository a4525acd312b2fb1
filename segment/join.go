//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package segment

import "strings"

// Punctuation is the default set of characters that attach to the preceding token.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type joinOptions struct {
	punctuation string
}

// JoinOption configures Join.
type JoinOption func(*joinOptions)

// WithPunctuation overrides the set of characters that suppress the leading space.
func WithPunctuation(set string) JoinOption {
	return func(o *joinOptions) {
		o.punctuation = set
	}
}

// Join concatenates parts with a single space, except before a part whose
// first character is punctuation. Empty parts are skipped and the result
// is trimmed.
func Join(parts []string, opts ...JoinOption) string {
	o := joinOptions{punctuation: Punctuation}
	for _, opt := range opts {
		opt(&o)
	}
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		first := []rune(part)[0]
		if !strings.ContainsRune(o.punctuation, first) {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return strings.TrimSpace(b.String())
}
