package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchFiles monitors inputPath and re-processes changed files until the
// context is cancelled. Markdown and HTML files are picked up on write and
// create events; directories created under a watched tree are added to the
// watcher so new posts are seen.
//
// If processing a changed file fails, the error is reported and watching
// continues; a broken draft should not kill the session.
func watchFiles(ctx context.Context, r Renderer, inputPath, outputDir string, params processParams, env *Environment) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTree(watcher, inputPath); err != nil {
		return fmt.Errorf("watching %s: %w", inputPath, err)
	}

	fmt.Fprintf(env.Stderr, "watching %s for changes (ctrl-c to stop)\n", inputPath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename (atomic save), so catch Create too.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				_ = addWatchTree(watcher, event.Name)
				continue
			}

			if _, err := classify(event.Name); err != nil {
				continue // not a post
			}

			baseDir := ""
			if info, err := os.Stat(inputPath); err == nil && info.IsDir() {
				baseDir = inputPath
			}
			f := FileToProcess{
				InputPath:  event.Name,
				OutputPath: resolveOutputPath(event.Name, outputDir, baseDir),
			}
			f.Kind, _ = classify(event.Name)

			res := processFile(ctx, r, f, params)
			if res.Err != nil {
				fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", res.InputPath, res.Err)
				continue
			}
			if res.Skipped {
				fmt.Fprintf(env.Stderr, "skip %s (draft)\n", res.InputPath)
				continue
			}
			fmt.Fprintf(env.Stderr, "ok   %s -> %s\n", res.InputPath, res.OutputPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", err)
		}
	}
}

// addWatchTree adds path and, if it is a directory, every directory below it.
func addWatchTree(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
