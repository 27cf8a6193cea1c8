package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"terragen/internal/app"
	"terragen/internal/biome"
	"terragen/internal/core"
	"terragen/internal/gen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Workers = runtime.NumCPU()
	cfg.Bind(flag.CommandLine)
	rules := flag.String("rules", "", "comma-separated rule sets to compare (default: all)")
	focus := flag.String("biome", "", "biome whose share gets its own column")
	flag.Parse()

	genCfg, err := cfg.Generator()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *focus != "" {
		if _, ok := core.ParseBiome(*focus); !ok {
			log.Fatalf("unknown biome %q", *focus)
		}
	}

	var names []string
	for _, name := range strings.Split(*rules, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = biome.Names()
	}

	fmt.Printf("Comparing %d rule sets on %dx%d terrain (seed %d, %d workers)\n",
		len(names), genCfg.Width, genCfg.Height, genCfg.Seeds.Elevation, genCfg.Workers)

	start := time.Now()
	reports, err := gen.CompareRuleSets(genCfg, names, genCfg.Workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n%-10s %7s %7s %7s %9s", "rules", "land", "rivers", "lakes", "agreement")
	if *focus != "" {
		fmt.Printf(" %9s", *focus)
	}
	fmt.Printf("  %s\n", "dominant biomes")
	for _, r := range reports {
		s := r.Summary
		fmt.Printf("%-10s %6.1f%% %7d %7d %8.1f%%",
			r.RuleSet, 100*s.LandFraction(), s.RiverCells, s.LakeCells, 100*r.WaterAgreement)
		if *focus != "" {
			share, err := s.ShareOf(*focus)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(" %8.1f%%", 100*share)
		}
		fmt.Printf("  %s\n", dominant(s, 3))
	}
	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))
}

// dominant lists the n most common biomes of s.
func dominant(s gen.Summary, n int) string {
	entries := strings.Split(s.Distribution(), ", ")
	if len(entries) > n {
		entries = entries[:n]
	}
	if len(entries) == 1 && entries[0] == "" {
		return "-"
	}
	return strings.Join(entries, ", ")
}
