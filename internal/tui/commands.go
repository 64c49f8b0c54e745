package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/inquiry/internal/research"
)

const askTimeout = 90 * time.Second

func askCmd(client research.Client, seq int, prompt string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		answer, err := client.Ask(ctx, prompt)
		return askResultMsg{seq: seq, answer: answer, err: err}
	}
}
