//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/language/translate/v2", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, translateRequest{Q: "Hello", Source: "en", Target: "fr", Format: "text"}, req)

		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Bonjour"}]}}`))
	}))
	defer srv.Close()

	tr := New(WithAPIKey("secret"), WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	out, err := tr.Translate(context.Background(), "Hello", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", out)
}

func TestTranslateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	tr := New(WithAPIKey("bad"), WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	_, err := tr.Translate(context.Background(), "Hello", "en", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestTranslateEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer srv.Close()

	tr := New(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	_, err := tr.Translate(context.Background(), "Hello", "en", "fr")
	assert.ErrorIs(t, err, translator.ErrEmptyResponse)
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_TRANSLATE_API_KEY", "from-env")
	assert.Equal(t, "from-env", New().apiKey)
	assert.Equal(t, "explicit", New(WithAPIKey("explicit")).apiKey)
}
