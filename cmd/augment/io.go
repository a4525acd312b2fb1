//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

type document struct {
	ID   string
	Text string
}

type record struct {
	ID        string `json:"id"`
	SourceID  string `json:"source_id"`
	Text      string `json:"text"`
	Augmented string `json:"augmented"`
}

const maxLineSize = 16 << 20

// readDocuments loads a JSONL file, a directory of .txt files, or a
// single text file.
func readDocuments(path string) ([]document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return readTextDir(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return readJSONL(f)
	}
	doc, err := readTextFile(path)
	if err != nil {
		return nil, err
	}
	return []document{doc}, nil
}

// readJSONL reads {"id": ..., "text": ...} objects. Lines without an id are
// numbered from 1.
func readJSONL(r io.Reader) ([]document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var docs []document
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		if !gjson.Valid(raw) {
			return nil, fmt.Errorf("line %d: invalid JSON", line)
		}
		fields := gjson.GetMany(raw, "id", "text")
		if !fields[1].Exists() {
			return nil, fmt.Errorf("line %d: missing text field", line)
		}
		id := fields[0].String()
		if id == "" {
			id = strconv.Itoa(line)
		}
		docs = append(docs, document{ID: id, Text: fields[1].String()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return docs, nil
}

func readTextDir(dir string) ([]document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	docs := make([]document, 0, len(names))
	for _, name := range names {
		doc, err := readTextFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func readTextFile(path string) (document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return document{}, fmt.Errorf("read %s: %w", path, err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return document{ID: id, Text: string(b)}, nil
}

func writeRecords(w io.Writer, records []record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write record %s: %w", r.ID, err)
		}
	}
	return bw.Flush()
}
