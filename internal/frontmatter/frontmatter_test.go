package frontmatter

import (
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantMeta Meta
		wantBody string
	}{
		{
			name:     "no front matter",
			input:    "# Title\n\nbody",
			wantMeta: Meta{},
			wantBody: "# Title\n\nbody",
		},
		{
			name:     "title and date",
			input:    "---\ntitle: \"Hello\"\ndate: \"2024-03-01\"\n---\nbody here",
			wantMeta: Meta{Title: "Hello", Date: "2024-03-01"},
			wantBody: "body here",
		},
		{
			name:     "draft flag",
			input:    "---\ntitle: wip\ndraft: true\n---\nbody",
			wantMeta: Meta{Title: "wip", Draft: true},
			wantBody: "body",
		},
		{
			name:     "empty block",
			input:    "---\n---\nbody",
			wantMeta: Meta{},
			wantBody: "body",
		},
		{
			name:     "no body after block",
			input:    "---\ntitle: only meta\n---",
			wantMeta: Meta{Title: "only meta"},
			wantBody: "",
		},
		{
			name:     "dashes mid-document are not a fence",
			input:    "body first\n---\ntitle: not meta\n---\n",
			wantMeta: Meta{},
			wantBody: "body first\n---\ntitle: not meta\n---\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("Split() body = %q, want %q", body, tt.wantBody)
			}
			if meta.Title != tt.wantMeta.Title || meta.Date != tt.wantMeta.Date || meta.Draft != tt.wantMeta.Draft {
				t.Errorf("Split() meta = %+v, want %+v", meta, tt.wantMeta)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	t.Parallel()

	meta, _, err := Split("---\ntitle: x\ntags:\n  - go\n  - blog\n---\nbody")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "go" || meta.Tags[1] != "blog" {
		t.Errorf("Split() tags = %v, want [go blog]", meta.Tags)
	}
}

func TestSplitExtraFields(t *testing.T) {
	t.Parallel()

	meta, _, err := Split("---\ntitle: x\nlayout: post\ncomments: true\n---\nbody")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if meta.Title != "x" {
		t.Errorf("Title = %q, want %q", meta.Title, "x")
	}
	if meta.Extra["layout"] != "post" {
		t.Errorf("Extra[layout] = %v, want %q", meta.Extra["layout"], "post")
	}
	if meta.Extra["comments"] != true {
		t.Errorf("Extra[comments] = %v, want true", meta.Extra["comments"])
	}
	if _, ok := meta.Extra["title"]; ok {
		t.Error("Extra should not contain keys with dedicated fields")
	}
}

func TestSplitUnterminated(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: never closed\nbody"
	_, body, err := Split(input)
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("Split() error = %v, want ErrUnterminated", err)
	}
	if body != input {
		t.Errorf("Split() on error should return input as body, got %q", body)
	}
}

func TestSplitInvalidYAML(t *testing.T) {
	t.Parallel()

	if _, _, err := Split("---\ntitle: [unclosed\n---\nbody"); err == nil {
		t.Error("Split() with invalid YAML should return an error")
	}
}
