package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdalerts "github.com/jquenard/go-mdalerts"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// Renderer is the interface for the transform service.
type Renderer interface {
	Render(ctx context.Context, input mdalerts.Input) (*mdalerts.Document, error)
	TransformHTML(ctx context.Context, htmlContent string) (string, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*mdalerts.Transformer)(nil)

// processParams groups parameters shared across the batch.
type processParams struct {
	includeDrafts bool
}

// ProcessResult holds the outcome of a single file.
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool // draft excluded from processing
	Err        error
	Duration   time.Duration
}

// processBatch processes files concurrently over a shared Renderer.
// The transformer is stateless after construction, so one instance serves
// all workers.
func processBatch(ctx context.Context, r Renderer, files []FileToProcess, params processParams, workers int) []ProcessResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]ProcessResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ProcessResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = processFile(ctx, r, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile reads, transforms, and writes a single file.
func processFile(ctx context.Context, r Renderer, f FileToProcess, params processParams) ProcessResult {
	start := time.Now()
	res := ProcessResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered under user-provided input path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return res
	}

	var output string
	switch f.Kind {
	case kindMarkdown:
		doc, err := r.Render(ctx, mdalerts.Input{Markdown: string(data)})
		if err != nil {
			res.Err = fmt.Errorf("rendering %s: %w", f.InputPath, err)
			return res
		}
		if doc.Draft && !params.includeDrafts {
			res.Skipped = true
			res.Duration = time.Since(start)
			return res
		}
		output = doc.Content
	case kindHTML:
		output, err = r.TransformHTML(ctx, string(data))
		if err != nil {
			res.Err = fmt.Errorf("transforming %s: %w", f.InputPath, err)
			return res
		}
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}
	if err := os.WriteFile(f.OutputPath, []byte(output), filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}

	res.Duration = time.Since(start)
	return res
}
