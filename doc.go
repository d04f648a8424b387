// Package mdalerts rewrites GitHub-style alert blockquotes in rendered HTML
// into styled callout boxes for a static blog pipeline.
//
// # Quick Start
//
// Create a transformer and run it over rendered HTML:
//
//	t, err := mdalerts.NewTransformer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := t.TransformHTML(ctx, "<blockquote><p>[!NOTE] mind the gap</p></blockquote>")
//
// Blockquotes whose first paragraph starts with [!NOTE], [!TIP], [!IMPORTANT],
// [!CAUTION] or [!WARNING] become:
//
//	<div class="alert is-info"><p class="alert-title"><i class="icon icon-alert-circle"></i>Note</p><p>mind the gap</p></div>
//
// Anything else (unknown tags, lowercase tags, plain blockquotes) passes
// through byte-for-byte. The theme's stylesheet keys off the "alert" and
// "alert-title" class names and the per-kind style class.
//
// # Post-Render Hook
//
// Static-site pipelines hand each page through TransformDocument after
// markdown rendering. Only the Content field is rewritten; all other fields
// pass through untouched:
//
//	doc, err := t.TransformDocument(ctx, mdalerts.Document{
//	    Title:   "Deploying with confidence",
//	    Content: renderedHTML,
//	})
//
// # Rendering Posts Directly
//
// Render runs the full harness for a single post: YAML front matter is split
// off, markdown is converted with Goldmark (GFM, footnotes, syntax
// highlighting, hard line breaks), alerts are rewritten, and an optional
// preview stylesheet is injected:
//
//	doc, err := t.Render(ctx, mdalerts.Input{Markdown: source})
//
// # Configuration
//
// Use functional options to customize the transformer:
//
//	t, err := mdalerts.NewTransformer(
//	    mdalerts.WithLabels(map[string]string{mdalerts.TagNote: "Remarque"}),
//	    mdalerts.WithStyle("preview"),
//	)
//
// The alert table is validated once at construction; the matcher pattern is
// derived from the table keys, so a matched tag always has a table entry.
// A Transformer is stateless after construction and safe for concurrent use.
package mdalerts
