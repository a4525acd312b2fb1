//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package dictionary

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"trpc.group/trpc-go/trpc-augment-go/log"
)

// BritishSpellingsURL hosts an American-to-British spelling table.
const BritishSpellingsURL = "https://raw.githubusercontent.com/hyperreality/American-British-English-Translator/master/data/british_spellings.json"

//go:embed data/contractions.json
var contractionsJSON []byte

// HTTPClient is the subset of *http.Client used by Fetch.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Load decodes a JSON object of string pairs from r.
func Load(r io.Reader, opts ...Option) (*Dictionary, error) {
	var m map[string]string
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return New(m, opts...)
}

// Fetch downloads a JSON dictionary from url. A nil client uses http.DefaultClient.
func Fetch(ctx context.Context, client HTTPClient, url string, opts ...Option) (*Dictionary, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dictionary request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dictionary %s: unexpected status %s", url, resp.Status)
	}
	d, err := Load(resp.Body, opts...)
	if err != nil {
		return nil, err
	}
	log.Debugf("dictionary: fetched %d entries from %s", d.Len(), url)
	return d, nil
}

// Contractions returns the bundled English contractions and slang table,
// keyed by the short form.
func Contractions(opts ...Option) (*Dictionary, error) {
	return Load(bytes.NewReader(contractionsJSON), opts...)
}
