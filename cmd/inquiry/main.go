package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/nvaldez/inquiry/internal/config"
	"github.com/nvaldez/inquiry/internal/research"
	"github.com/nvaldez/inquiry/internal/tui"
)

func main() {
	endpointFlag := flag.String("endpoint", "", "ask endpoint URL (overrides "+config.EnvEndpoint+")")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	// Missing .env files are fine; the environment and defaults cover it.
	_ = godotenv.Load()

	endpoint, err := config.Endpoint(*endpointFlag)
	if err != nil {
		fmt.Println("invalid configuration:", err)
		os.Exit(1)
	}

	client, err := research.New(research.Config{Endpoint: endpoint})
	if err != nil {
		fmt.Println("failed to build research client:", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Endpoint: endpoint,
			Client:   client,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
