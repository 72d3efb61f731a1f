package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tldr/internal/config"
	"github.com/csheth/tldr/internal/relayclient"
	"github.com/csheth/tldr/internal/theme"
	"github.com/csheth/tldr/internal/tui"
	"github.com/csheth/tldr/internal/vocab"
)

var _ tui.Pinger = (*relayclient.Client)(nil)

func main() {
	configPath := flag.String("config", "", "path to a YAML preferences file")
	relayURL := flag.String("relay", "", "relay base URL (default "+config.DefaultRelayURL+")")
	inputFile := flag.String("file", "", "import a .txt or .pdf file on startup")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	if path := os.Getenv("TLDR_DEBUG_LOG"); path != "" {
		f, err := tea.LogToFile(path, "tldr")
		if err != nil {
			fmt.Println("failed to open debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	if *relayURL != "" {
		cfg.RelayURL = *relayURL
	}

	client := relayclient.New(cfg.RelayURL)
	log.Printf("[main] relay=%s vocab=%s", cfg.RelayURL, cfg.VocabLevel)

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Relay:          client,
			RelayName:      cfg.RelayURL,
			Vocab:          vocab.Levels,
			VocabLevel:     cfg.VocabLevel,
			Theme:          theme.Named(cfg.Background, cfg.Font, cfg.Typeface),
			InitialFile:    *inputFile,
			RevealInterval: cfg.RevealInterval,
			RevealRate:     cfg.RevealRate,
		}),
		opts...,
	)

	start := time.Now()
	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
	log.Printf("[main] exited after %s", time.Since(start).Round(time.Second))
}
