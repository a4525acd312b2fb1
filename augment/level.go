//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package augment

import (
	"fmt"
	"slices"
)

// Level is the granularity at which a transform makes its decisions.
type Level string

// Supported levels.
const (
	LevelWord     Level = "word"
	LevelSentence Level = "sentence"
	LevelText     Level = "text"
)

// ParseLevel converts s into a Level.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case LevelWord, LevelSentence, LevelText:
		return l, nil
	default:
		return "", fmt.Errorf("unknown level %q: %w", s, ErrConfiguration)
	}
}

// ValidateLevel reports an ErrConfiguration error unless l is one of allowed.
func ValidateLevel(l Level, allowed ...Level) error {
	if slices.Contains(allowed, l) {
		return nil
	}
	return fmt.Errorf("level %q not in %v: %w", l, allowed, ErrConfiguration)
}
