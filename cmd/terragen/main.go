package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"terragen/internal/app"
	"terragen/internal/core"
	"terragen/internal/gen"
	"terragen/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "terrain.png", "output image (.png, .bmp, .tif)")
	showParams := flag.Bool("params", false, "print the resolved parameters and exit")
	flag.Parse()

	genCfg, err := cfg.Generator()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	mode, err := cfg.RenderMode()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *showParams {
		printParams(genCfg.Parameters())
		return
	}

	start := time.Now()
	res, err := gen.Run(genCfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	elapsed := time.Since(start)

	if err := render.WriteFile(*out, render.Image(res.Grid, mode)); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	s := gen.Summarize(res.Grid)
	h := res.Hydrology
	log.Printf("generated %dx%d %s terrain in %s -> %s (%s)",
		s.Size.W, s.Size.H, res.RuleSet, elapsed.Round(time.Millisecond), *out, mode)
	log.Printf("land %.1f%%, elevation %.3f..%.3f (mean %.3f), moisture %.3f, temperature %.3f",
		100*s.LandFraction(), s.MinElevation, s.MaxElevation, s.MeanElevation, s.MeanMoisture, s.MeanTemp)
	log.Printf("biomes: %s", s.Distribution())
	log.Printf("hydrology: %d/%d sources, %d steps, %d sinks, %d river cells, %d lake cells",
		h.Sources, h.RequestedSources, h.Steps, h.Sinks, s.RiverCells, s.LakeCells)
}

func printParams(snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("  %s=%s\n", p.Key, p.Value)
		}
	}
}
