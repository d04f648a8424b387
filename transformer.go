package mdalerts

import (
	"context"
	"fmt"
	"os"

	"github.com/jquenard/go-mdalerts/internal/assets"
	"github.com/jquenard/go-mdalerts/internal/fileutil"
	"github.com/jquenard/go-mdalerts/internal/frontmatter"
	"github.com/jquenard/go-mdalerts/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.AlertRewriter        = (*pipeline.RegexAlertRewriter)(nil)
	_ pipeline.StyleInjector        = (*pipeline.StyleInjection)(nil)
)

// Transformer rewrites alert blockquotes in rendered HTML and, via Render,
// runs the full post-rendering harness. Create with NewTransformer; a
// Transformer is read-only afterwards and safe for concurrent use.
type Transformer struct {
	cfg           transformerConfig
	assetLoader   assets.Loader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	alertRewriter pipeline.AlertRewriter
	styleInjector pipeline.StyleInjector
}

// NewTransformer creates a Transformer with the default alert table.
// Use options to customize behavior (e.g., WithLabels, WithStyle).
// Returns an error if the alert table or asset configuration is invalid.
func NewTransformer(opts ...Option) (*Transformer, error) {
	t := &Transformer{
		cfg:           transformerConfig{alerts: DefaultAlerts()},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		styleInjector: &pipeline.StyleInjection{},
	}

	for _, opt := range opts {
		opt(t)
	}

	// Handle WithAssetPath: resolve to a filesystem loader
	if t.cfg.assetPath != "" {
		loader, err := assets.NewFilesystemLoader(t.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		t.assetLoader = loader
	}

	// Copy the table before applying overrides so a caller-owned map from
	// WithAlerts is never mutated.
	alerts := make(map[string]AlertSpec, len(t.cfg.alerts))
	for tag, spec := range t.cfg.alerts {
		alerts[tag] = spec
	}
	for tag, label := range t.cfg.labels {
		spec, ok := alerts[tag]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlertTag, tag)
		}
		if label == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyAlertLabel, tag)
		}
		spec.Label = label
		alerts[tag] = spec
	}
	t.cfg.alerts = alerts

	// Validate the table and compile the matcher. Building the pattern from
	// the table keys keeps the matched tag set and the table in sync.
	rewriter, err := pipeline.NewRegexAlertRewriter(toAlertSpecs(alerts))
	if err != nil {
		return nil, fmt.Errorf("initializing alert rewriter: %w", err)
	}
	t.alertRewriter = rewriter

	if err := t.resolveStyle(); err != nil {
		return nil, err
	}

	return t, nil
}

// TransformHTML rewrites every matching alert blockquote in htmlContent.
// This is the post-render hook proper: all content outside matched regions
// passes through byte-for-byte.
func (t *Transformer) TransformHTML(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return t.alertRewriter.RewriteAlerts(ctx, htmlContent), nil
}

// TransformDocument rewrites alerts in doc.Content and returns the document.
// All other fields pass through unmodified.
func (t *Transformer) TransformDocument(ctx context.Context, doc Document) (Document, error) {
	content, err := t.TransformHTML(ctx, doc.Content)
	if err != nil {
		return doc, err
	}
	doc.Content = content
	return doc, nil
}

// Render runs the full harness for one post: front matter split, markdown
// preprocessing, Goldmark conversion, alert rewriting, and optional style
// injection. The returned document carries the front matter fields and the
// final HTML in Content.
func (t *Transformer) Render(ctx context.Context, input Input) (*Document, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	meta, body, err := frontmatter.Split(input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	mdContent := t.preprocessor.PreprocessMarkdown(ctx, body)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlContent, err := t.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent = t.alertRewriter.RewriteAlerts(ctx, htmlContent)

	if t.cfg.fullDocument {
		htmlContent = pipeline.WrapDocument(htmlContent, meta.Title)
	}

	// Converter style first (base), caller CSS last (can override).
	cssContent := t.cfg.resolvedStyle
	if input.CSS != "" {
		if cssContent != "" {
			cssContent += "\n"
		}
		cssContent += input.CSS
	}
	htmlContent = t.styleInjector.InjectStyle(ctx, htmlContent, cssContent)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Document{
		Title:   meta.Title,
		Date:    meta.Date,
		Tags:    meta.Tags,
		Draft:   meta.Draft,
		Extra:   meta.Extra,
		Content: htmlContent,
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Called during NewTransformer after options are applied and the
// asset loader is configured.
func (t *Transformer) resolveStyle() error {
	input := t.cfg.styleInput
	if input == "" {
		return nil // no style specified
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		t.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		t.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := t.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	t.cfg.resolvedStyle = css
	return nil
}

// toAlertSpecs converts the public alert table to pipeline specs.
func toAlertSpecs(alerts map[string]AlertSpec) map[string]pipeline.AlertSpec {
	specs := make(map[string]pipeline.AlertSpec, len(alerts))
	for tag, spec := range alerts {
		specs[tag] = pipeline.AlertSpec(spec)
	}
	return specs
}
