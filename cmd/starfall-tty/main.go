package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"starfall/internal/app"
	"starfall/internal/game"
	"starfall/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file while the terminal is in use")
	flag.Parse()

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DumpConfig {
		if err := gameCfg.WriteTOML(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	log.Printf("starting %gx%g field, seed %d", gameCfg.Width, gameCfg.Height, gameCfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	// Restore the terminal before a crash report reaches stderr.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "starfall crashed: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(gameCfg, nil)

	runErr := tty.New(screen, session, cfg.TPS).Run(ctx)
	screen.Fini()
	if runErr != nil && ctx.Err() == nil {
		log.Fatal(runErr)
	}
	log.Printf("session ended: score %d, lives %d, %s", session.Score(), session.Lives(), session.State())
}
