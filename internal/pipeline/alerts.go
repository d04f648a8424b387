package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Sentinel errors for alert rewriter construction.
var (
	ErrEmptyAlertTable     = errors.New("alert table cannot be empty")
	ErrInvalidAlertTag     = errors.New("invalid alert tag")
	ErrIncompleteAlertSpec = errors.New("alert spec missing style class or label")
)

// AlertSpec describes how one recognized tag renders.
type AlertSpec struct {
	StyleClass string
	Icon       string
	Label      string
}

// AlertRewriter defines the contract for alert blockquote rewriting.
type AlertRewriter interface {
	RewriteAlerts(ctx context.Context, htmlContent string) string
}

// hardBreak matches the hard line-break markers a markdown renderer emits
// (<br>, <br/>, <br />), consuming the newline printed after each one.
var hardBreak = regexp.MustCompile(`<br ?/?>\n?`)

// RegexAlertRewriter rewrites tagged blockquotes into styled callout boxes.
//
// The matcher pattern is built from the table keys at construction, so a
// matched tag always has a table entry; the tag set and the table cannot
// drift apart. The rewriter is read-only after construction and safe for
// concurrent use.
type RegexAlertRewriter struct {
	alerts  map[string]AlertSpec
	pattern *regexp.Regexp
}

// NewRegexAlertRewriter validates the alert table and compiles the matcher.
func NewRegexAlertRewriter(alerts map[string]AlertSpec) (*RegexAlertRewriter, error) {
	if len(alerts) == 0 {
		return nil, ErrEmptyAlertTable
	}

	tags := make([]string, 0, len(alerts))
	for tag, spec := range alerts {
		if tag == "" || strings.ContainsAny(tag, "[]!") || strings.ContainsAny(tag, " \t\r\n") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAlertTag, tag)
		}
		if spec.StyleClass == "" || spec.Label == "" {
			return nil, fmt.Errorf("%w: %q", ErrIncompleteAlertSpec, tag)
		}
		tags = append(tags, regexp.QuoteMeta(tag))
	}
	sort.Strings(tags)

	// (?s) lets the body span lines. \s* between the block tags tolerates the
	// newlines and indentation a renderer prints around nested blocks. Tags
	// are matched exactly, case-sensitively; a single space after the closing
	// bracket is consumed so one-line bodies don't start with a space.
	pattern := regexp.MustCompile(
		`(?s)<blockquote>\s*<p>\[!(` + strings.Join(tags, "|") + `)\] ?(.*?)</p>\s*</blockquote>`)

	clone := make(map[string]AlertSpec, len(alerts))
	for tag, spec := range alerts {
		clone[tag] = spec
	}

	return &RegexAlertRewriter{alerts: clone, pattern: pattern}, nil
}

// RewriteAlerts replaces every matching blockquote in htmlContent with its
// callout markup, left to right, non-overlapping. Everything outside matched
// regions passes through byte-for-byte. Returns the input unchanged if the
// context is already cancelled.
func (r *RegexAlertRewriter) RewriteAlerts(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	return r.pattern.ReplaceAllStringFunc(htmlContent, func(block string) string {
		m := r.pattern.FindStringSubmatch(block)
		return renderAlert(r.alerts[m[1]], m[2])
	})
}

// renderAlert builds the callout markup for one matched block.
//
// The body is split on hard-break markers. A tag line followed by a blank
// line yields a leading empty segment; only that first empty segment is
// dropped. Every remaining segment, empty ones included, becomes its own
// paragraph, verbatim, with no whitespace between paragraphs.
func renderAlert(spec AlertSpec, body string) string {
	lines := hardBreak.Split(body, -1)
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	var b strings.Builder
	b.WriteString(`<div class="alert `)
	b.WriteString(spec.StyleClass)
	b.WriteString(`"><p class="alert-title">`)
	if spec.Icon != "" {
		b.WriteString(`<i class="icon icon-`)
		b.WriteString(spec.Icon)
		b.WriteString(`"></i>`)
	}
	b.WriteString(spec.Label)
	b.WriteString(`</p>`)
	for _, line := range lines {
		b.WriteString(`<p>`)
		b.WriteString(line)
		b.WriteString(`</p>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
