//
// Tencent is pleased to support the open source community by making trpc-augment-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-augment-go is licensed under the Apache License Version 2.0.
//
//

// Command augment runs a configured augmentation pipeline over a corpus
// and writes the augmented documents as JSON lines.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"trpc.group/trpc-go/trpc-augment-go/config"
)

const version = "0.1.0"

// CLI defines the command-line interface.
var CLI struct {
	Run        RunCmd        `cmd:"" help:"Augment documents with a pipeline"`
	Transforms TransformsCmd `cmd:"" help:"List registered transforms"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// TransformsCmd lists the registered transform names.
type TransformsCmd struct{}

// Run prints one name per line.
func (c *TransformsCmd) Run() error {
	for _, name := range config.Names() {
		fmt.Println(name)
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run() error {
	fmt.Printf("augment %s\n", version)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	k := kong.Parse(&CLI,
		kong.Name("augment"),
		kong.Description("Text augmentation pipeline runner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := k.Run()
	k.FatalIfErrorf(err)
}
