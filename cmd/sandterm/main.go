package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"chrono-ghost/internal/app"
	"chrono-ghost/internal/logging"
	"chrono-ghost/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const statusRows = 6

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	logPath := flag.String("log", "sandterm.log", "log file (the terminal is taken by the grid)")
	fit := flag.Bool("fit", true, "size the grid to the terminal")
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logging.ToFile(cfg.Logging, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("open terminal", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		log.Fatal("init terminal", zap.Error(err))
	}
	screen.EnableMouse()

	if *fit {
		cols, rows := screen.Size()
		cfg.Sand.Width = max(cols, 1)
		cfg.Sand.Height = max(2*(rows-statusRows), 2)
	}

	sess, err := app.NewSession(cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer sess.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := app.NewTerminal(sess, screen, cfg.Window.TPS, log)
	err = term.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("bye", zap.Uint64("frames", sess.World.Frame()), zap.Int("rows", render.Rows(cfg.Sand.Height)))
}
