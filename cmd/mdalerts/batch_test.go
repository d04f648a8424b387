package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdalerts "github.com/jquenard/go-mdalerts"
)

// fakeRenderer implements Renderer without touching Goldmark.
type fakeRenderer struct {
	draft bool
	err   error
}

func (f *fakeRenderer) Render(_ context.Context, input mdalerts.Input) (*mdalerts.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &mdalerts.Document{Draft: f.draft, Content: "rendered:" + input.Markdown}, nil
}

func (f *fakeRenderer) TransformHTML(_ context.Context, htmlContent string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "transformed:" + htmlContent, nil
}

func TestProcessBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	mustWrite(t, filepath.Join(dir, "a.md"), "# a")
	mustWrite(t, filepath.Join(dir, "b.html"), "<p>b</p>")

	files := []FileToProcess{
		{InputPath: filepath.Join(dir, "a.md"), OutputPath: filepath.Join(outDir, "a.html"), Kind: kindMarkdown},
		{InputPath: filepath.Join(dir, "b.html"), OutputPath: filepath.Join(outDir, "b.html"), Kind: kindHTML},
	}

	results := processBatch(context.Background(), &fakeRenderer{}, files, processParams{}, 2)
	if len(results) != 2 {
		t.Fatalf("processBatch() returned %d results, want 2", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("result for %s: %v", res.InputPath, res.Err)
		}
	}

	a, err := os.ReadFile(filepath.Join(outDir, "a.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != "rendered:# a" {
		t.Errorf("markdown output = %q", a)
	}

	b, err := os.ReadFile(filepath.Join(outDir, "b.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "transformed:<p>b</p>" {
		t.Errorf("html output = %q", b)
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	t.Parallel()

	if results := processBatch(context.Background(), &fakeRenderer{}, nil, processParams{}, 4); results != nil {
		t.Errorf("processBatch(no files) = %v, want nil", results)
	}
}

func TestProcessFileDraftSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "draft.md")
	out := filepath.Join(dir, "draft.html")
	mustWrite(t, in, "# wip")

	f := FileToProcess{InputPath: in, OutputPath: out, Kind: kindMarkdown}

	res := processFile(context.Background(), &fakeRenderer{draft: true}, f, processParams{})
	if res.Err != nil {
		t.Fatalf("processFile() error = %v", res.Err)
	}
	if !res.Skipped {
		t.Error("draft should be skipped")
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("skipped draft must not write output")
	}

	res = processFile(context.Background(), &fakeRenderer{draft: true}, f, processParams{includeDrafts: true})
	if res.Err != nil {
		t.Fatalf("processFile() error = %v", res.Err)
	}
	if res.Skipped {
		t.Error("--drafts should include draft posts")
	}
	if _, err := os.Stat(out); err != nil {
		t.Error("included draft must write output")
	}
}

func TestProcessFileReadFailure(t *testing.T) {
	t.Parallel()

	f := FileToProcess{
		InputPath:  filepath.Join(t.TempDir(), "missing.md"),
		OutputPath: filepath.Join(t.TempDir(), "missing.html"),
		Kind:       kindMarkdown,
	}

	res := processFile(context.Background(), &fakeRenderer{}, f, processParams{})
	if !errors.Is(res.Err, ErrReadInput) {
		t.Errorf("processFile(missing) error = %v, want ErrReadInput", res.Err)
	}
}

func TestProcessFileRenderFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "a.md")
	mustWrite(t, in, "# a")

	wantErr := errors.New("boom")
	f := FileToProcess{InputPath: in, OutputPath: filepath.Join(dir, "a.html"), Kind: kindMarkdown}

	res := processFile(context.Background(), &fakeRenderer{err: wantErr}, f, processParams{})
	if !errors.Is(res.Err, wantErr) {
		t.Errorf("processFile() error = %v, want %v", res.Err, wantErr)
	}
	if !strings.Contains(res.Err.Error(), "rendering") {
		t.Errorf("error should name the stage: %v", res.Err)
	}
}

func TestProcessBatchEndToEnd(t *testing.T) {
	t.Parallel()

	// Real transformer over a real post: the library path the CLI exercises.
	transformer, err := mdalerts.NewTransformer()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	in := filepath.Join(dir, "post.md")
	out := filepath.Join(dir, "post.html")
	mustWrite(t, in, "---\ntitle: \"E2E\"\n---\n\n> [!CAUTION] sharp edges\n")

	files := []FileToProcess{{InputPath: in, OutputPath: out, Kind: kindMarkdown}}
	results := processBatch(context.Background(), transformer, files, processParams{}, 1)
	if results[0].Err != nil {
		t.Fatalf("processBatch() error = %v", results[0].Err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := `<div class="alert is-caution"><p class="alert-title"><i class="icon icon-skull"></i>Caution</p><p>sharp edges</p></div>`
	if !strings.Contains(string(data), want) {
		t.Errorf("output missing rewritten alert:\n%s", data)
	}
}
