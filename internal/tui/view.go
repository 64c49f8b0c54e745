package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m *model) View() string {
	parts := []string{
		m.heroView(),
		m.promptView(),
		m.bodyView(),
		m.sessionMeterView(),
		helperStyle.Render("Enter ask  •  1-4 try a suggestion  •  ↑/↓ scroll answer  •  Esc quit"),
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	logo := logoStyle.Render("inquiry")
	return lipgloss.JoinVertical(
		lipgloss.Left,
		logo,
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) promptView() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Research Question"))
	b.WriteRune('\n')
	b.WriteString(m.promptInput.View())
	return b.String()
}

// bodyView renders exactly one of the four mutually exclusive states:
// placeholder, loading, error, or the result card.
func (m *model) bodyView() string {
	switch m.stage {
	case stageLoading:
		return fmt.Sprintf("%s Researching %q…", m.spinner.View(), m.question)
	case stageError:
		return errorStyle.Render(m.errorMessage)
	case stageResult:
		m.refreshViewportIfDirty()
		return m.viewport.View()
	default:
		return m.placeholderView()
	}
}

func (m *model) placeholderView() string {
	lines := []string{
		helperStyle.Render("Type a question and press Enter, or try a suggestion:"),
	}
	for i, prompt := range suggestionPrompts {
		key := keyStyle.Render(fmt.Sprintf("%d", i+1))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, " ", key, keyDescStyle.Render(" "+prompt)))
	}
	return strings.Join(lines, "\n")
}

func (m *model) resultCard() string {
	wrap := m.wrapWidth(4)
	var b strings.Builder
	b.WriteString(helperStyle.Render(wordwrap.String("Q: "+m.question, wrap)))
	b.WriteRune('\n')
	b.WriteRune('\n')
	b.WriteString(titleStyle.Render(wordwrap.String(m.answer.Title, wrap)))
	b.WriteRune('\n')
	b.WriteRune('\n')
	b.WriteString(wordwrap.String(m.answer.Summary, wrap))
	return cardStyle.Render(b.String())
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	heroAccentColor = lipgloss.Color("#8ecae6")

	logoStyle    = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor).Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Padding(0, 2)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb347")).Italic(true)

	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(heroAccentColor).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
)
