// Package diffview renders a colored, YAML-ish view of the difference
// between two trees. The classification is driven by
// [treedict.Changeset]; styling is done with lipgloss.
package diffview

import "github.com/dictkit-project/dictkit/pkg/treedict"

// Options controls rendering.
type Options struct {
	IndentSize int
	// Highlight paints changed nodes with a background color. Without
	// it, only syntax coloring is applied.
	Highlight bool
}

// DefaultOptions is what [Render] uses.
var DefaultOptions = Options{
	IndentSize: 2,
	Highlight:  true,
}

// Render renders the difference between [a] and [b].
func Render(a, b treedict.Tree, theme Theme) string {
	return RenderWithOptions(a, b, theme, DefaultOptions)
}

// RenderWithOptions is [Render] with custom options.
func RenderWithOptions(a, b treedict.Tree, theme Theme, opts Options) string {
	return renderNodeString(Annotate(a, b), theme, opts)
}
