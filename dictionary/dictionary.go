//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Package dictionary holds ordered bidirectional substitution tables and
// the boundary-aware replacement used by the dictionary transforms.
package dictionary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultBoundaries are the characters that may flank a dictionary key.
const DefaultBoundaries = ".,:?! \n\t"

var (
	// ErrDuplicateValue is returned in strict mode when two keys share a value.
	ErrDuplicateValue = errors.New("dictionary: duplicate value")
	// ErrEmptyEntry is returned when a key or a value is empty.
	ErrEmptyEntry = errors.New("dictionary: empty key or value")
)

// Entry is one key/value substitution.
type Entry struct {
	Key   string
	Value string
}

// Dictionary is an immutable ordered substitution table with its reverse view.
type Dictionary struct {
	entries []Entry
	reverse []Entry
}

type options struct {
	strict bool
}

// Option configures New.
type Option func(*options)

// WithStrict makes duplicate values an error instead of letting the first
// entry win the reverse slot.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// New builds a dictionary from m. Entries are ordered longest key first,
// then lexically, so longer phrases are substituted before their prefixes.
func New(m map[string]string, opts ...Option) (*Dictionary, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		if k == "" || v == "" {
			return nil, fmt.Errorf("entry %q -> %q: %w", k, v, ErrEmptyEntry)
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sortEntries(entries)

	seen := make(map[string]string, len(entries))
	reverse := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.Value]; ok {
			if o.strict {
				return nil, fmt.Errorf("value %q of %q already used by %q: %w", e.Value, e.Key, prev, ErrDuplicateValue)
			}
			continue
		}
		seen[e.Value] = e.Key
		reverse = append(reverse, Entry{Key: e.Value, Value: e.Key})
	}
	sortEntries(reverse)
	return &Dictionary{entries: entries, reverse: reverse}, nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(entries[i].Key), utf8.RuneCountInString(entries[j].Key)
		if li != lj {
			return li > lj
		}
		return entries[i].Key < entries[j].Key
	})
}

// Len returns the number of forward entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns the forward entries in substitution order.
func (d *Dictionary) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Reverse returns the value-to-key view.
func (d *Dictionary) Reverse() *Dictionary {
	return &Dictionary{entries: d.reverse, reverse: d.entries}
}

// Map returns the forward entries as a map.
func (d *Dictionary) Map() map[string]string {
	m := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Lookup returns the forward value for key. The transforms only walk
// Entries; Lookup serves callers that inspect a loaded table.
func (d *Dictionary) Lookup(key string) (string, bool) {
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Replace substitutes every occurrence of key in text that is flanked on
// both sides by a boundary character or the text edge. Boundary characters
// are kept. Matches are tested against the original text, so two matches
// may share one boundary.
func Replace(text, key, value, boundaries string) string {
	if key == "" || !strings.Contains(text, key) {
		return text
	}
	var b strings.Builder
	last, i := 0, 0
	for i <= len(text)-len(key) {
		j := strings.Index(text[i:], key)
		if j < 0 {
			break
		}
		j += i
		end := j + len(key)
		if atBoundary(text, j, end, boundaries) {
			b.WriteString(text[last:j])
			b.WriteString(value)
			last, i = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[j:])
		i = j + size
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func atBoundary(text string, start, end int, boundaries string) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if !strings.ContainsRune(boundaries, r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if !strings.ContainsRune(boundaries, r) {
			return false
		}
	}
	return true
}
