package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barbgs/redux-todo/internal/cli"
	"github.com/barbgs/redux-todo/internal/config"
	"github.com/barbgs/redux-todo/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group exec output by pending/done")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvPath+" or ~/.config/redux-todo/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		ui.Fail(err.Error())
		return 2
	}
	filter, _ := cfg.InitialFilter() // validated by Load

	// The TUI owns the terminal, so diagnostics go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "redux-todo")
		if err != nil {
			ui.Fail("log: " + err.Error())
			return 1
		}
		defer f.Close()
		logger = log.Default()
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		return 2
	}

	code := cli.Run(args, cli.Options{
		Group:  *groupPending,
		Filter: filter,
		Logger: logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
