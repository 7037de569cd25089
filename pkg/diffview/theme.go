package diffview

import "github.com/charmbracelet/lipgloss"

type syntaxKind int

const (
	kindKey syntaxKind = iota
	kindString
	kindNumber
	kindBool
	kindNull
	kindOther
)

// Theme bundles the styles used by the renderer.
type Theme struct {
	KeyStyle    lipgloss.Style
	StringStyle lipgloss.Style
	NumberStyle lipgloss.Style
	BoolStyle   lipgloss.Style
	NullStyle   lipgloss.Style

	AddedBg    lipgloss.Style
	RemovedBg  lipgloss.Style
	ModifiedBg lipgloss.Style
}

// DarkTheme is tuned for dark terminals.
var DarkTheme = Theme{
	KeyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	StringStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
	NumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
	BoolStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
	NullStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),

	AddedBg:    lipgloss.NewStyle().Background(lipgloss.Color("#144212")).Foreground(lipgloss.Color("#A9DC76")),
	RemovedBg:  lipgloss.NewStyle().Background(lipgloss.Color("#4C1F1F")).Foreground(lipgloss.Color("#E06C75")),
	ModifiedBg: lipgloss.NewStyle().Background(lipgloss.Color("#3A3000")).Foreground(lipgloss.Color("#E5C07B")),
}

// NoColor renders everything unstyled, for pipes and tests.
var NoColor = Theme{}

// syntax applies the style for the given token kind.
func (t Theme) syntax(kind syntaxKind, content string) string {
	switch kind {
	case kindKey:
		return t.KeyStyle.Render(content)
	case kindString:
		return t.StringStyle.Render(content)
	case kindNumber:
		return t.NumberStyle.Render(content)
	case kindBool:
		return t.BoolStyle.Render(content)
	case kindNull:
		return t.NullStyle.Render(content)
	default:
		return content
	}
}

// background applies the change highlight for the given kind.
func (t Theme) background(change ChangeKind, content string) string {
	switch change {
	case Added:
		return t.AddedBg.Render(content)
	case Removed:
		return t.RemovedBg.Render(content)
	case Modified:
		return t.ModifiedBg.Render(content)
	default:
		return content
	}
}
