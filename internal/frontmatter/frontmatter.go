// Package frontmatter splits and parses the YAML front matter block that
// leads a blog post source file.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jquenard/go-mdalerts/internal/yamlutil"
)

// ErrUnterminated indicates an opening --- fence with no closing fence.
var ErrUnterminated = errors.New("frontmatter: unterminated front matter block")

const fence = "---"

// Meta holds the recognized front matter fields of a post.
// Fields without a dedicated slot end up in Extra.
type Meta struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
	Draft bool     `yaml:"draft"`
	Extra map[string]any
}

// knownKeys are the front matter keys mapped to dedicated Meta fields.
var knownKeys = map[string]bool{
	"title": true,
	"date":  true,
	"tags":  true,
	"draft": true,
}

// Split separates front matter from the body. The block must start on the
// first line with --- and end with a --- line. Content without a leading
// fence is returned whole as body with a zero Meta.
func Split(content string) (Meta, string, error) {
	var meta Meta

	if !strings.HasPrefix(content, fence+"\n") && content != fence {
		return meta, content, nil
	}

	rest := strings.TrimPrefix(content, fence)
	rest = strings.TrimPrefix(rest, "\n")

	var block, body string
	switch end := strings.Index(rest, "\n"+fence); {
	case strings.HasPrefix(rest, fence):
		// Closing fence on the very next line: empty block.
		body = rest[len(fence):]
	case end != -1:
		block = rest[:end]
		body = rest[end+len("\n"+fence):]
	default:
		return meta, content, ErrUnterminated
	}
	body = strings.TrimPrefix(body, "\n")

	if strings.TrimSpace(block) == "" {
		return meta, body, nil
	}

	meta, err := parse([]byte(block))
	if err != nil {
		return Meta{}, content, err
	}
	return meta, body, nil
}

// parse unmarshals the block twice: once into the typed struct and once into
// a generic map to collect the passthrough fields.
func parse(block []byte) (Meta, error) {
	var meta Meta
	if err := yamlutil.Unmarshal(block, &meta); err != nil {
		return Meta{}, fmt.Errorf("frontmatter: %w", err)
	}

	raw := map[string]any{}
	if err := yamlutil.Unmarshal(block, &raw); err != nil {
		return Meta{}, fmt.Errorf("frontmatter: %w", err)
	}

	for key := range raw {
		if knownKeys[key] {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		meta.Extra = raw
	}
	return meta, nil
}
