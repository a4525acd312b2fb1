//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package translator

import "fmt"

// DefaultSystemPrompt instructs a chat model to act as a plain translator.
const DefaultSystemPrompt = "You are a professional translator. " +
	"Reply with the translation only, without quotes, notes or explanations. " +
	"Preserve the line breaks and punctuation of the input."

// UserPrompt builds the user turn asking a chat model to translate text.
func UserPrompt(text, source, target string) string {
	return fmt.Sprintf("Translate the following text from %s to %s.\n\n%s",
		LanguageName(source), LanguageName(target), text)
}
