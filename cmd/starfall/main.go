//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"starfall/internal/app"
	"starfall/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
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

	session := game.NewSession(gameCfg, nil)
	g := app.New(session, cfg.Scale)
	size := session.Size()

	ebiten.SetWindowTitle("starfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
