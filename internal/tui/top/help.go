package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabpage/internal/tui"
)

var (
	helpKeyStyle  = tui.Bold.Copy().Foreground(tui.HelpKey).Margin(0, 1, 0, 0)
	helpDescStyle = tui.Regular.Copy().Foreground(tui.HelpDesc).Margin(0, 3, 0, 0)

	longHelpHeadingStyle = tui.Bold.Copy().Foreground(tui.HelpKey)
)

// shortHelpView renders help for key bindings on a single line, stopping
// before the maximum width is exceeded.
func shortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		pairs []string
		width int
	)
	for _, kb := range bindings {
		pair := lipgloss.JoinHorizontal(lipgloss.Left,
			helpKeyStyle.Render(kb.Help().Key),
			helpDescStyle.Render(kb.Help().Desc),
		)
		width += tui.Width(pair)
		if width > maxWidth {
			break
		}
		pairs = append(pairs, pair)
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, pairs...), " ")
}

// fullHelpView renders a table of two columns describing the key bindings,
// categorised into those of the current page and global keys.
func fullHelpView(page, global []key.Binding) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		helpColumn("PAGE", page),
		helpColumn("GLOBAL", global),
	)
}

func helpColumn(heading string, bindings []key.Binding) string {
	keys := make([]string, len(bindings))
	descs := make([]string, len(bindings))
	for i, kb := range bindings {
		keys[i] = helpKeyStyle.Render(kb.Help().Key)
		descs[i] = helpDescStyle.Render(kb.Help().Desc)
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		longHelpHeadingStyle.Render(heading),
		lipgloss.JoinHorizontal(lipgloss.Left,
			strings.Join(keys, "\n"),
			strings.Join(descs, "\n"),
		),
	)
}
