//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"chrono-ghost/internal/app"
	"chrono-ghost/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	sess, err := app.NewSession(cfg, log)
	if err != nil {
		log.Fatal("start session", zap.Error(err))
	}
	game := app.New(sess, cfg, log)
	defer game.Close()

	size := sess.World.Size()
	ebiten.SetWindowTitle("chrono-ghost sand")
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(size.W*cfg.Window.Scale+cfg.Window.HUDWidth, size.H*cfg.Window.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", zap.Error(err))
	}
}
