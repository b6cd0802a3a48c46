package browser

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders an event description as markdown. Rendering is
// best effort: on failure the raw text is shown instead.
func renderMarkdown(text string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
