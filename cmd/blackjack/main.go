package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#1B5E20")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config string `short:"c" help:"Path to HCL table configuration" default:"blackjack.hcl"`
	Seats  int    `short:"s" help:"Number of human seats at the table (overrides config)" default:"0"`
	Seed   int64  `help:"Deck shuffle seed, 0 picks one from the clock" default:"0"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
	Fast   bool   `help:"Skip the dealer's pacing pauses"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	fmt.Print(titleStyle.Render(" ♠ ♥ Blackjack CLI ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	if err := run(cli); err != nil {
		log.Fatal("Game ended with error", "error", err)
	}

	kctx.Exit(0)
}

func run(cli CLI) error {
	cfg, err := game.LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cli.Seats > 0 {
		cfg.Game.Seats = cli.Seats
	}
	if cli.Fast {
		cfg.Game.PaceMs = 0
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	debugFile, err := os.OpenFile(cfg.Game.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	logLevel := log.InfoLevel
	if cli.Debug {
		logLevel = log.DebugLevel
	}
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "BLACKJACK",
		Level:           logLevel,
	})

	seed := cli.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting game", "seed", seed, "seats", cfg.Game.Seats)

	console, err := display.NewConsole()
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}
	defer func() {
		if err := console.Close(); err != nil {
			log.Error("Failed to close console", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	engine := game.NewEngine(cfg, console, logger, quartz.NewReal(), randutil.New(seed))
	return engine.Run(ctx)
}
