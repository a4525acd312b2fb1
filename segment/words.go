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
	"regexp"
	"strings"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Treebank-style rules. Closing brackets, separators and clitics are split
// off so that Join reattaches them. Opening brackets, quotes and symbols
// such as $ stay on the following word, and Join drops the space before
// them, so Join(Words(s)) differs from s around those characters.
var wordRules = []rule{
	{regexp.MustCompile(`\.\.\.`), " ... "},
	{regexp.MustCompile(`([:,])([^\d])`), " $1 $2"},
	{regexp.MustCompile(`([:,])$`), " $1 "},
	{regexp.MustCompile(`([;?!%])`), " $1 "},
	{regexp.MustCompile(`([\]\)\}])`), " $1 "},
	{regexp.MustCompile(`([^\.])(\.)([\]\)\}"']*)\s*$`), "$1 $2$3 "},
}

var (
	cliticRule  = regexp.MustCompile(`(?i)([^' ])('s|'m|'d|'ll|'re|'ve) `)
	trailingApo = regexp.MustCompile(`([^' ])' `)
)

func tokenizeWords(sentence string) []string {
	s := sentence
	for _, r := range wordRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	s = " " + s + " "
	s = cliticRule.ReplaceAllString(s, "$1 $2 ")
	s = trailingApo.ReplaceAllString(s, "$1 ' ")
	return strings.Fields(s)
}
