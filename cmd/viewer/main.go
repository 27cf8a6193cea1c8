//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terragen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	genCfg, err := cfg.Generator()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	mode, err := cfg.RenderMode()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	game, err := app.New(genCfg, mode, scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("terragen - " + genCfg.RuleSet)
	ebiten.SetWindowSize(genCfg.Width*scale+app.HUDWidth, genCfg.Height*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
