package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/inquiry/internal/research"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Endpoint string
	Client   research.Client
}

const (
	validationMessage = "Enter a research topic to explore."
	heroTagline       = "Explore research topics from your terminal."
)

// suggestionPrompts are one-keystroke shortcuts offered while the prompt is
// empty. Pressing the matching digit populates the prompt and submits it
// through the same path as manual entry.
var suggestionPrompts = [...]string{
	"How do mRNA vaccines work?",
	"What is quantum entanglement?",
	"Why do some stars explode as supernovae?",
	"How does CRISPR edit genes?",
}

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

type stage int

const (
	stageIdle stage = iota
	stageLoading
	stageError
	stageResult
)

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	promptInput := textinput.New()
	promptInput.Placeholder = "What would you like to research?"
	promptInput.Focus()
	promptInput.CharLimit = 280
	promptInput.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 16)
	vp.MouseWheelEnabled = true

	return &model{
		config:      config,
		stage:       stageIdle,
		promptInput: promptInput,
		spinner:     spin,
		viewport:    vp,
	}
}

type model struct {
	config Config
	stage  stage

	promptInput textinput.Model
	spinner     spinner.Model
	viewport    viewport.Model

	// seq tags each submission; a response carrying an older seq is stale
	// and dropped, so overlapping requests never fight over the view.
	seq int

	question     string
	answer       research.Answer
	errorMessage string
	asked        int

	viewportDirty bool
}

type askResultMsg struct {
	seq    int
	answer research.Answer
	err    error
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageResult {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case askResultMsg:
		return m.handleAskResult(msg)
	case tea.WindowSizeMsg:
		newWidth := msg.Width - viewportHorizontalPadding
		if newWidth < minViewportWidth {
			newWidth = minViewportWidth
		}
		m.viewport.Width = newWidth
		height := msg.Height - 12
		if height < 5 {
			height = 5
		}
		m.viewport.Height = height
		m.markViewportDirty()
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		// The submit control stays disabled while a request is in flight.
		if m.stage == stageLoading {
			return m, nil
		}
		return m, m.submit(m.promptInput.Value())
	}

	if idx, ok := suggestionIndexForKey(key); ok && m.stage != stageLoading && strings.TrimSpace(m.promptInput.Value()) == "" {
		m.promptInput.SetValue(suggestionPrompts[idx])
		m.promptInput.CursorEnd()
		return m, m.submit(suggestionPrompts[idx])
	}

	if m.stage == stageResult {
		switch key.String() {
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(key)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(key)
	return m, cmd
}

// submit validates and dispatches a research question. An empty prompt is
// rejected locally and never reaches the network.
func (m *model) submit(text string) tea.Cmd {
	prompt := strings.TrimSpace(text)
	if prompt == "" {
		m.stage = stageError
		m.errorMessage = validationMessage
		m.answer = research.Answer{}
		return nil
	}

	m.seq++
	m.stage = stageLoading
	m.errorMessage = ""
	m.answer = research.Answer{}
	m.question = prompt
	return tea.Batch(m.spinner.Tick, askCmd(m.config.Client, m.seq, prompt))
}

func (m *model) handleAskResult(msg askResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	if msg.err != nil {
		m.stage = stageError
		m.errorMessage = displayError(msg.err)
		m.answer = research.Answer{}
		return m, nil
	}
	m.stage = stageResult
	m.errorMessage = ""
	m.answer = msg.answer
	m.asked++
	m.viewport.SetYOffset(0)
	m.markViewportDirty()
	return m, nil
}

func displayError(err error) string {
	if err == nil {
		return research.FallbackTransportMessage
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return research.FallbackTransportMessage
}

func suggestionIndexForKey(key tea.KeyMsg) (int, bool) {
	s := key.String()
	if len(s) != 1 || s[0] < '1' {
		return 0, false
	}
	idx := int(s[0] - '1')
	if idx >= len(suggestionPrompts) {
		return 0, false
	}
	return idx, true
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewportDirty = false
	m.viewport.SetContent(m.resultCard())
}

func (m *model) stageLabel() string {
	switch m.stage {
	case stageLoading:
		return "RESEARCHING"
	case stageError:
		return "ERROR"
	case stageResult:
		return "ANSWERED"
	default:
		return "READY"
	}
}

func (m *model) sessionMeterView() string {
	stats := []string{
		fmt.Sprintf("Mode %s", m.stageLabel()),
		fmt.Sprintf("Asked %d", m.asked),
		fmt.Sprintf("Endpoint %s", m.config.Endpoint),
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}
