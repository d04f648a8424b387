package pipeline

import (
	"context"
	"strings"
)

// StyleInjector defines the contract for stylesheet injection into HTML.
type StyleInjector interface {
	InjectStyle(ctx context.Context, htmlContent, cssContent string) string
}

// StyleInjection injects CSS as a <style> block into HTML content.
type StyleInjection struct{}

// InjectStyle inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends; fragments get the
// prepend path. CSS content is sanitized so it cannot close the block.
func (s *StyleInjection) InjectStyle(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
