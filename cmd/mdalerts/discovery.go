package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jquenard/go-mdalerts/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have a .md, .markdown, .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// fileKind classifies how an input file is processed.
type fileKind int

const (
	kindMarkdown fileKind = iota // rendered to HTML, then alerts rewritten
	kindHTML                     // alerts rewritten only
)

// FileToProcess represents a single file to process.
type FileToProcess struct {
	InputPath  string
	OutputPath string
	Kind       fileKind
}

// discoverFiles finds all processable files under inputPath.
func discoverFiles(inputPath, outputDir string) ([]FileToProcess, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		kind, err := classify(inputPath)
		if err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToProcess{{InputPath: inputPath, OutputPath: outPath, Kind: kind}}, nil
	}

	var files []FileToProcess
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		kind, classifyErr := classify(path)
		if classifyErr != nil {
			return nil // not a post, skip silently
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToProcess{InputPath: path, OutputPath: outPath, Kind: kind})
		return nil
	})

	return files, err
}

// classify maps a file extension to its processing kind.
func classify(path string) (fileKind, error) {
	switch {
	case fileutil.IsMarkdownFile(path):
		return kindMarkdown, nil
	case fileutil.IsHTMLFile(path):
		return kindHTML, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// resolveOutputPath determines the HTML output path for an input file.
// With no output directory, markdown outputs land alongside the source and
// HTML inputs are rewritten in place, matching the post-render hook.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".html")
	}

	if strings.HasSuffix(outputDir, ".html") {
		return outputDir
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}

// validateWorkers checks the worker count flag. Zero means auto.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, n)
	}
	return nil
}
