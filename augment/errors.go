//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package augment

import "errors"

var (
	// ErrConfiguration is returned when a transform is built with invalid
	// parameters or a required resource cannot be loaded.
	ErrConfiguration = errors.New("augment: invalid configuration")
	// ErrRange is returned when the input is too short for the requested operation.
	ErrRange = errors.New("augment: input out of range")
	// ErrTranslation is returned when the external translation capability fails.
	ErrTranslation = errors.New("augment: translation failed")
)
