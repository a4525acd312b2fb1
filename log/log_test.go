//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// TestSetLevel verifies that SetLevel updates the shared atomic level,
// falling back to info for unknown names.
func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
	}
	for _, c := range cases {
		SetLevel(c.in)
		assert.Equal(t, c.expected, zapLevel.Level(), "SetLevel(%q)", c.in)
	}
}

func TestSetOutput(t *testing.T) {
	old := Default
	t.Cleanup(func() {
		Default = old
		SetLevel(LevelInfo)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)

	Debugf("hidden %d", 1)
	Infof("visible %d", 2)
	Warn("warned")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "visible 2")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "warned")
}

func TestHelpersDelegateToDefault(t *testing.T) {
	old := Default
	t.Cleanup(func() { Default = old })

	stub := &countLogger{}
	Default = stub
	Debug("a")
	Debugf("a")
	Info("a")
	Infof("a")
	Warn("a")
	Warnf("a")
	Error("a")
	Errorf("a")
	Fatal("a")
	Fatalf("a")
	assert.Equal(t, 10, stub.calls)
}

type countLogger struct {
	calls int
}

func (c *countLogger) Debug(args ...any)                 { c.calls++ }
func (c *countLogger) Debugf(format string, args ...any) { c.calls++ }
func (c *countLogger) Info(args ...any)                  { c.calls++ }
func (c *countLogger) Infof(format string, args ...any)  { c.calls++ }
func (c *countLogger) Warn(args ...any)                  { c.calls++ }
func (c *countLogger) Warnf(format string, args ...any)  { c.calls++ }
func (c *countLogger) Error(args ...any)                 { c.calls++ }
func (c *countLogger) Errorf(format string, args ...any) { c.calls++ }
func (c *countLogger) Fatal(args ...any)                 { c.calls++ }
func (c *countLogger) Fatalf(format string, args ...any) { c.calls++ }
