//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-augment-go/translator"
)

type fakeModels struct {
	reply    string
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(f.reply, genai.RoleModel),
		}},
	}, nil
}

type fakeClient struct{ models *fakeModels }

func (c *fakeClient) Models() Models { return c.models }

func TestTranslate(t *testing.T) {
	models := &fakeModels{reply: "Hallo Welt\n"}
	tr, err := New(context.Background(), "gemini-test", WithClient(&fakeClient{models: models}), WithTemperature(0.1))
	require.NoError(t, err)

	out, err := tr.Translate(context.Background(), "Hello world", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Hallo Welt", out)

	assert.Equal(t, "gemini-test", models.model)
	require.Len(t, models.contents, 1)
	require.Len(t, models.contents[0].Parts, 1)
	assert.Contains(t, models.contents[0].Parts[0].Text, "from English to German")
	require.NotNil(t, models.config.Temperature)
	assert.InDelta(t, 0.1, *models.config.Temperature, 1e-6)
	require.NotNil(t, models.config.SystemInstruction)
	assert.Equal(t, translator.DefaultSystemPrompt, models.config.SystemInstruction.Parts[0].Text)
}

func TestTranslateErrors(t *testing.T) {
	boom := errors.New("quota")
	tr, err := New(context.Background(), "gemini-test", WithClient(&fakeClient{models: &fakeModels{err: boom}}))
	require.NoError(t, err)
	_, err = tr.Translate(context.Background(), "Hello", "en", "de")
	assert.ErrorIs(t, err, boom)

	tr, err = New(context.Background(), "gemini-test", WithClient(&fakeClient{models: &fakeModels{reply: "  "}}))
	require.NoError(t, err)
	_, err = tr.Translate(context.Background(), "Hello", "en", "de")
	assert.ErrorIs(t, err, translator.ErrEmptyResponse)
}
