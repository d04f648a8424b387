package mdalerts

// Built-in alert tags. Tags are matched case-sensitively against the first
// characters of a blockquote paragraph: [!NOTE], [!TIP], and so on.
const (
	TagNote      = "NOTE"
	TagTip       = "TIP"
	TagImportant = "IMPORTANT"
	TagCaution   = "CAUTION"
	TagWarning   = "WARNING"
)

// AlertSpec describes how one alert tag renders: the style class added to
// the callout container, the icon shown in the title, and the display label.
type AlertSpec struct {
	StyleClass string // CSS class on the container, e.g. "is-info"
	Icon       string // icon name in the title, e.g. "alert-circle"
	Label      string // visible title text, e.g. "Note"
}

// DefaultAlerts returns the built-in alert table. The theme stylesheet keys
// off these exact class names, so changing them breaks published pages.
// Returns a fresh map on each call; callers may mutate their copy freely.
func DefaultAlerts() map[string]AlertSpec {
	return map[string]AlertSpec{
		TagNote:      {StyleClass: "is-info", Icon: "alert-circle", Label: "Note"},
		TagTip:       {StyleClass: "is-success", Icon: "leaf", Label: "Tip"},
		TagImportant: {StyleClass: "is-important", Icon: "hand-right", Label: "Important"},
		TagCaution:   {StyleClass: "is-caution", Icon: "skull", Label: "Caution"},
		TagWarning:   {StyleClass: "is-warning", Icon: "warning", Label: "Warning"},
	}
}

// Document is one page passing through the pipeline. TransformDocument
// rewrites Content only; every other field passes through untouched.
type Document struct {
	Title   string
	Date    string
	Tags    []string
	Draft   bool
	Extra   map[string]any // front matter fields with no dedicated slot
	Content string         // rendered HTML
}

// Input contains rendering parameters for Render.
type Input struct {
	Markdown string // post source, optionally with YAML front matter (required)
	CSS      string // extra CSS appended after the resolved style (optional)
}

// Option configures a Transformer.
type Option func(*Transformer)

// transformerConfig holds internal configuration for Transformer.
type transformerConfig struct {
	alerts        map[string]AlertSpec
	labels        map[string]string
	styleInput    string
	resolvedStyle string
	assetPath     string
	fullDocument  bool
}

// WithAlerts replaces the alert table. The table is validated at
// construction; the matcher pattern is rebuilt from its keys.
func WithAlerts(alerts map[string]AlertSpec) Option {
	return func(t *Transformer) {
		t.cfg.alerts = alerts
	}
}

// WithLabels overrides display labels per tag, e.g. for localization.
// Keys must exist in the alert table; NewTransformer fails otherwise.
func WithLabels(labels map[string]string) Option {
	return func(t *Transformer) {
		t.cfg.labels = labels
	}
}

// WithStyle sets the preview stylesheet injected by Render.
// Accepts a style name (resolved via the asset loader), a file path,
// or raw CSS content.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(t *Transformer) {
		t.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithAssetPath loads styles from dir instead of the embedded assets.
func WithAssetPath(dir string) Option {
	return func(t *Transformer) {
		t.cfg.assetPath = dir
	}
}

// WithFullDocument makes Render wrap the output in a complete HTML5
// document instead of emitting a body fragment.
func WithFullDocument() Option {
	return func(t *Transformer) {
		t.cfg.fullDocument = true
	}
}
