// Package pipeline implements the post-to-HTML rendering stages.
//
// This package handles preprocessing, HTML conversion, and HTML rewriting:
//   - Markdown preprocessing (line-ending normalization, blank-line limits)
//   - Markdown to HTML conversion via Goldmark
//   - Alert blockquote rewriting into styled callout boxes
//   - Stylesheet injection into HTML documents
//
// Front matter handling lives in internal/frontmatter; the public API that
// ties the stages together is the root mdalerts package.
package pipeline
