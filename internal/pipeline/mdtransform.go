package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// utf8BOM is the byte-order mark some Windows editors prepend to post files.
const utf8BOM = "\ufeff"

// Compress runs of blank lines to at most one blank line.
var blankLineRuns = regexp.MustCompile(`\n{3,}`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor normalizes a post source before CommonMark
// conversion: BOM removal, line-ending normalization, and blank-line
// compression. Returns the input unchanged on a cancelled context.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown prepares raw post source for conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, utf8BOM)
	content = normalizeLineEndings(content)
	return blankLineRuns.ReplaceAllString(content, "\n\n")
}

// normalizeLineEndings converts \r\n and bare \r to \n. Posts written on
// Windows or pasted from old Mac tools otherwise confuse the line-based
// alert splitting downstream.
func normalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
