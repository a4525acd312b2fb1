//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/augment/accent"
	"trpc.group/trpc-go/trpc-augment-go/augment/backtranslation"
	"trpc.group/trpc-go/trpc-augment-go/augment/crop"
	"trpc.group/trpc-go/trpc-augment-go/augment/cutout"
	"trpc.group/trpc-go/trpc-augment-go/augment/keyword"
	"trpc.group/trpc-go/trpc-augment-go/augment/numberwords"
	"trpc.group/trpc-go/trpc-augment-go/augment/sentenceremoval"
	"trpc.group/trpc-go/trpc-augment-go/augment/slang"
	"trpc.group/trpc-go/trpc-augment-go/dictionary"
)

func init() {
	Register("cutout", buildCutOut)
	Register("crop", buildCrop)
	Register("sentence_removal", buildSentenceRemoval)
	Register("slang", buildSlang)
	Register("accent", buildAccent)
	Register("number_words", buildNumberWords)
	Register("keyword", buildKeyword)
	Register("back_translation", buildBackTranslation)
}

func applier[T augment.Applier](a T, err error) (augment.Applier, error) {
	if err != nil {
		return nil, err
	}
	return a, nil
}

func parseLevel(s string, def augment.Level) (augment.Level, error) {
	if s == "" {
		return def, nil
	}
	return augment.ParseLevel(s)
}

func loadDictionary(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %v: %w", err, augment.ErrConfiguration)
	}
	defer f.Close()
	d, err := dictionary.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %v: %w", path, err, augment.ErrConfiguration)
	}
	return d.Map(), nil
}

func buildCutOut(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Level    string   `yaml:"level"`
		Fraction *float64 `yaml:"fraction"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	level, err := parseLevel(o.Level, augment.LevelWord)
	if err != nil {
		return nil, err
	}
	opts := []cutout.Option{cutout.WithLevel(level), cutout.WithRand(deps.Rand), cutout.WithSegmenter(deps.Segmenter)}
	if s.P != nil {
		opts = append(opts, cutout.WithProbability(*s.P))
	}
	if o.Fraction != nil {
		opts = append(opts, cutout.WithFraction(*o.Fraction))
	}
	return applier(cutout.New(opts...))
}

func buildCrop(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Size         []int `yaml:"size"`
		MinSentences *int  `yaml:"min_sentences"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	opts := []crop.Option{crop.WithRand(deps.Rand), crop.WithSegmenter(deps.Segmenter)}
	if s.P != nil {
		opts = append(opts, crop.WithProbability(*s.P))
	}
	switch len(o.Size) {
	case 0:
	case 2:
		opts = append(opts, crop.WithSize(o.Size[0], o.Size[1]))
	default:
		return nil, fmt.Errorf("crop size needs two values, got %v: %w", o.Size, augment.ErrConfiguration)
	}
	if o.MinSentences != nil {
		opts = append(opts, crop.WithMinSentences(*o.MinSentences))
	}
	return applier(crop.New(opts...))
}

func buildSentenceRemoval(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		NumSentences *int `yaml:"num_sentences"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	opts := []sentenceremoval.Option{sentenceremoval.WithRand(deps.Rand), sentenceremoval.WithSegmenter(deps.Segmenter)}
	if s.P != nil {
		opts = append(opts, sentenceremoval.WithProbability(*s.P))
	}
	if o.NumSentences != nil {
		opts = append(opts, sentenceremoval.WithNumSentences(*o.NumSentences))
	}
	return applier(sentenceremoval.New(opts...))
}

func buildSlang(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Level          string            `yaml:"level"`
		Dictionary     map[string]string `yaml:"dictionary"`
		DictionaryFile string            `yaml:"dictionary_file"`
		FullToSlang    bool              `yaml:"full_to_slang"`
		Boundaries     *string           `yaml:"boundaries"`
		Strict         bool              `yaml:"strict"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	level, err := parseLevel(o.Level, augment.LevelText)
	if err != nil {
		return nil, err
	}
	if o.DictionaryFile != "" {
		if o.Dictionary, err = loadDictionary(o.DictionaryFile); err != nil {
			return nil, err
		}
	}
	opts := []slang.Option{
		slang.WithLevel(level),
		slang.WithFullToSlang(o.FullToSlang),
		slang.WithStrict(o.Strict),
		slang.WithRand(deps.Rand),
	}
	if o.Dictionary != nil {
		opts = append(opts, slang.WithDictionary(o.Dictionary))
	}
	if o.Boundaries != nil {
		opts = append(opts, slang.WithBoundaries(*o.Boundaries))
	}
	if s.P != nil {
		opts = append(opts, slang.WithProbability(*s.P))
	}
	return applier(slang.New(opts...))
}

func buildAccent(ctx context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Level          string            `yaml:"level"`
		Dictionary     map[string]string `yaml:"dictionary"`
		DictionaryFile string            `yaml:"dictionary_file"`
		DictionaryURL  string            `yaml:"dictionary_url"`
		Boundaries     *string           `yaml:"boundaries"`
		Strict         bool              `yaml:"strict"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	level, err := parseLevel(o.Level, augment.LevelText)
	if err != nil {
		return nil, err
	}
	if o.DictionaryFile != "" {
		if o.Dictionary, err = loadDictionary(o.DictionaryFile); err != nil {
			return nil, err
		}
	}
	opts := []accent.Option{
		accent.WithLevel(level),
		accent.WithStrict(o.Strict),
		accent.WithRand(deps.Rand),
	}
	if deps.HTTPClient != nil {
		opts = append(opts, accent.WithHTTPClient(deps.HTTPClient))
	}
	if o.Dictionary != nil {
		opts = append(opts, accent.WithDictionary(o.Dictionary))
	}
	if o.DictionaryURL != "" {
		opts = append(opts, accent.WithDictionaryURL(o.DictionaryURL))
	}
	if o.Boundaries != nil {
		opts = append(opts, accent.WithBoundaries(*o.Boundaries))
	}
	if s.P != nil {
		opts = append(opts, accent.WithProbability(*s.P))
	}
	return applier(accent.New(ctx, opts...))
}

func buildNumberWords(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Level string `yaml:"level"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	level, err := parseLevel(o.Level, augment.LevelText)
	if err != nil {
		return nil, err
	}
	opts := []numberwords.Option{
		numberwords.WithLevel(level),
		numberwords.WithRand(deps.Rand),
		numberwords.WithSegmenter(deps.Segmenter),
	}
	if s.P != nil {
		opts = append(opts, numberwords.WithProbability(*s.P))
	}
	return applier(numberwords.New(opts...))
}

func buildKeyword(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Keywords      map[string][]string `yaml:"keywords"`
		Level         string              `yaml:"level"`
		PerOccurrence bool                `yaml:"per_occurrence"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	level, err := parseLevel(o.Level, augment.LevelText)
	if err != nil {
		return nil, err
	}
	opts := []keyword.Option{
		keyword.WithKeywords(o.Keywords),
		keyword.WithLevel(level),
		keyword.WithPerOccurrence(o.PerOccurrence),
		keyword.WithRand(deps.Rand),
	}
	if s.P != nil {
		opts = append(opts, keyword.WithProbability(*s.P))
	}
	return applier(keyword.New(opts...))
}

func buildBackTranslation(_ context.Context, s Stage, deps Deps) (augment.Applier, error) {
	var o struct {
		Source            string         `yaml:"source"`
		Target            string         `yaml:"target"`
		Delay             *time.Duration `yaml:"delay"`
		SegmentDelay      *time.Duration `yaml:"segment_delay"`
		TranslationsDelay *time.Duration `yaml:"translations_delay"`
		MaxLength         *int           `yaml:"max_length"`
	}
	if err := s.Decode(&o); err != nil {
		return nil, err
	}
	opts := []backtranslation.Option{
		backtranslation.WithTranslator(deps.Translator),
		backtranslation.WithRand(deps.Rand),
		backtranslation.WithSegmenter(deps.Segmenter),
	}
	if o.Source != "" {
		opts = append(opts, backtranslation.WithSourceLanguage(o.Source))
	}
	if o.Target != "" {
		opts = append(opts, backtranslation.WithTargetLanguage(o.Target))
	}
	if o.Delay != nil {
		opts = append(opts, backtranslation.WithDelay(*o.Delay))
	}
	if o.SegmentDelay != nil {
		opts = append(opts, backtranslation.WithSegmentDelay(*o.SegmentDelay))
	}
	if o.TranslationsDelay != nil {
		opts = append(opts, backtranslation.WithTranslationsDelay(*o.TranslationsDelay))
	}
	if o.MaxLength != nil {
		opts = append(opts, backtranslation.WithMaxLength(*o.MaxLength))
	}
	if s.P != nil {
		opts = append(opts, backtranslation.WithProbability(*s.P))
	}
	return applier(backtranslation.New(opts...))
}
