package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, optErr := config.LoadOptions()

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if optErr != nil {
		logger.Warn("ignoring invalid settings", "err", optErr)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	var sound audio.Player = audio.Nop{}
	if opts.Sound {
		sm := audio.NewSoundManager(-1)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Close()
			sound = sm
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "ship_limit", opts.ShipLimit, "bullets_allowed", opts.BulletsAllowed, "sound", opts.Sound)

	return loop.Run(ctx, screen, loop.Options{
		Settings: opts.Settings(),
		Logger:   logger,
		Sound:    sound,
		KeyHold:  opts.KeyHold,
	})
}

// newLogger writes to opts.LogFile, or nowhere when it is empty. The
// terminal itself belongs to the game.
func newLogger(opts config.Options) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
		Prefix:          "alien-invasion",
	})

	if level, err := log.ParseLevel(opts.LogLevel); err != nil {
		logger.Warn("unknown log level, using info", "level", opts.LogLevel)
	} else {
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}
