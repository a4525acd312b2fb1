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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-augment-go/augment"
	"trpc.group/trpc-go/trpc-augment-go/augment/backtranslation"
	"trpc.group/trpc-go/trpc-augment-go/config"
	"trpc.group/trpc-go/trpc-augment-go/log"
	"trpc.group/trpc-go/trpc-augment-go/telemetry/metric"
	"trpc.group/trpc-go/trpc-augment-go/telemetry/trace"
)

// RunCmd augments every input document once.
type RunCmd struct {
	Config       string `required:"" short:"c" help:"Pipeline YAML file" type:"existingfile"`
	Input        string `required:"" short:"i" help:"JSONL file, text file or directory of .txt files" type:"path"`
	Output       string `short:"o" default:"-" help:"Output JSONL file, - for stdout"`
	Workers      int    `default:"4" help:"Documents processed concurrently"`
	Retries      uint   `default:"3" help:"Retries for failed translations"`
	Translator   string `default:"openai" enum:"openai,gemini,google" help:"Translation backend"`
	Model        string `help:"Chat model for the openai and gemini backends, defaults per backend"`
	LogLevel     string `name:"log-level" default:"info" enum:"debug,info,warn,error,fatal" help:"Log level"`
	Seed         int64  `default:"-1" help:"Random seed, negative for a random run"`
	OTLPEndpoint string `name:"otlp-endpoint" help:"OTLP gRPC collector for metrics and traces"`
}

// Run executes the command.
func (c *RunCmd) Run(ctx context.Context) error {
	log.SetLevel(c.LogLevel)

	if c.OTLPEndpoint != "" {
		shutdown, err := startTelemetry(ctx, c.OTLPEndpoint)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	p, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	var deps config.Deps
	if p.Uses("back_translation") {
		if deps.Translator, err = newTranslator(ctx, c.Translator, c.Model); err != nil {
			return err
		}
	}
	opts := processOptions{workers: c.Workers, retries: c.Retries}
	if c.Seed >= 0 {
		seed := uint64(c.Seed)
		opts.seed = &seed
		deps.Rand = augment.NewRand(seed)
	}
	pipeline, err := config.Build(ctx, p, deps)
	if err != nil {
		return err
	}

	docs, err := readDocuments(c.Input)
	if err != nil {
		return err
	}
	log.Infof("augmenting %d documents with %d stages and %d workers", len(docs), pipeline.Len(), c.Workers)

	start := time.Now()
	records, err := process(ctx, pipeline, docs, opts)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := writeRecords(w, records); err != nil {
		return err
	}
	log.Infof("wrote %d of %d documents in %s", len(records), len(docs), time.Since(start).Round(time.Millisecond))
	return nil
}

func startTelemetry(ctx context.Context, endpoint string) (func(), error) {
	shutdownMetrics, err := metric.Start(ctx, metric.WithEndpoint(endpoint))
	if err != nil {
		return nil, err
	}
	cleanTraces, err := trace.Start(ctx, trace.WithEndpoint(endpoint))
	if err != nil {
		_ = shutdownMetrics(ctx)
		return nil, err
	}
	return func() {
		if err := cleanTraces(); err != nil {
			log.Warnf("flush traces: %v", err)
		}
		if err := shutdownMetrics(context.Background()); err != nil {
			log.Warnf("flush metrics: %v", err)
		}
	}, nil
}

// newBackOff is replaced in tests.
var newBackOff = func() backoff.BackOff {
	return backoff.NewExponentialBackOff()
}

// augmentDocument applies the pipeline, retrying translation failures.
func augmentDocument(ctx context.Context, a augment.Applier, doc document, retries uint) (string, error) {
	attempt := 0
	return backoff.Retry(ctx, func() (string, error) {
		attempt++
		out, err := a.ApplyOne(ctx, doc.Text)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, augment.ErrConfiguration) || !errors.Is(err, augment.ErrTranslation) {
			return "", backoff.Permanent(err)
		}
		log.Warnf("document %s: attempt %d: %v", doc.ID, attempt, err)
		return "", err
	}, backoff.WithBackOff(newBackOff()), backoff.WithMaxTries(retries+1))
}

type processOptions struct {
	workers int
	retries uint
	// seed gives document i its own source seeded with seed+i, so results
	// do not depend on which worker picks the document up.
	seed    *uint64
}

type task struct {
	ctx     context.Context
	idx     int
	doc     document
	applier augment.Applier
	retries uint
	pace    time.Duration
	records []*record
	errs    []error
	wg      *sync.WaitGroup
}

// process augments docs concurrently. Documents too short for a stage are
// skipped, and any other failure aborts the run. A pipeline that paces its
// items runs one document at a time and pauses after each.
func process(ctx context.Context, a augment.Applier, docs []document, opts processOptions) ([]record, error) {
	if opts.workers <= 0 {
		return nil, errors.New("workers must be greater than 0")
	}
	workers := opts.workers
	var pace time.Duration
	if p, ok := a.(augment.Pacer); ok {
		pace = p.Pace()
	}
	if pace > 0 && workers > 1 {
		log.Infof("pipeline pauses %s between documents, running with one worker", pace)
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	records := make([]*record, len(docs))
	errs := make([]error, len(docs))
	var wg sync.WaitGroup

	pool, err := ants.NewPoolWithFunc(workers, func(args any) {
		t, ok := args.(*task)
		if !ok {
			panic("augment pool args type error")
		}
		defer t.wg.Done()
		if err := t.ctx.Err(); err != nil {
			t.errs[t.idx] = err
			return
		}
		out, err := augmentDocument(t.ctx, t.applier, t.doc, t.retries)
		switch {
		case err == nil:
			t.records[t.idx] = &record{
				ID:        uuid.NewString(),
				SourceID:  t.doc.ID,
				Text:      t.doc.Text,
				Augmented: out,
			}
		case errors.Is(err, augment.ErrRange):
			log.Warnf("document %s skipped: %v", t.doc.ID, err)
		default:
			t.errs[t.idx] = fmt.Errorf("document %s: %w", t.doc.ID, err)
			cancel()
			return
		}
		if err := backtranslation.Sleep(t.ctx, t.pace); err != nil {
			t.errs[t.idx] = err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create augment pool: %w", err)
	}
	defer pool.Release()

	for i, doc := range docs {
		docCtx := ctx
		if opts.seed != nil {
			docCtx = augment.ContextWithRand(ctx, augment.NewRand(*opts.seed+uint64(i)))
		}
		wg.Add(1)
		t := &task{
			ctx:     docCtx,
			idx:     i,
			doc:     doc,
			applier: a,
			retries: opts.retries,
			pace:    pace,
			records: records,
			errs:    errs,
			wg:      &wg,
		}
		if err := pool.Invoke(t); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit document %s: %w", doc.ID, err)
			cancel()
			break
		}
	}
	wg.Wait()

	var firstCancel error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return nil, err
		}
		if firstCancel == nil {
			firstCancel = err
		}
	}
	if firstCancel != nil {
		return nil, firstCancel
	}

	out := make([]record, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
