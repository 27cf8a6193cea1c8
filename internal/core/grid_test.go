package core

import "testing"

func TestNewGridRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}, {3, -2}} {
		if _, err := NewGrid(dims[0], dims[1]); err == nil {
			t.Fatalf("expected error for %dx%d grid", dims[0], dims[1])
		}
	}
}

func TestGridSetClampsAndRoundTrips(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(3, 2, Cell{Elevation: 1.4, Moisture: -0.2, Temperature: 0.5, Biome: BiomeForest, RiverStrength: 2})

	c := g.At(3, 2)
	if c.Elevation != 1 || c.Moisture != 0 || c.Temperature != 0.5 || c.RiverStrength != 1 {
		t.Fatalf("expected clamped values, got %+v", c)
	}
	if c.Biome != BiomeForest {
		t.Fatalf("expected forest biome, got %v", c.Biome)
	}

	g.SetRiverStrength(0, 0, -3)
	if got := g.At(0, 0).RiverStrength; got != 0 {
		t.Fatalf("river strength should clamp to 0, got %f", got)
	}
	g.MarkLake(1, 1)
	if !g.At(1, 1).IsLake {
		t.Fatal("expected (1,1) to be marked as lake")
	}
	if got := g.At(2, 2).SettlementID; got != -1 {
		t.Fatalf("expected fresh cells to have no settlement, got %d", got)
	}
}

func TestGridClearResetsCells(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 1, Cell{Elevation: 0.7, Biome: BiomeMountain, RiverStrength: 0.5, SettlementID: 3})
	g.MarkLake(0, 1)
	g.Clear()
	want := Cell{SettlementID: -1}
	g.Each(func(x, y int, c Cell) {
		if c != want {
			t.Fatalf("cell (%d,%d) not reset: %+v", x, y, c)
		}
	})
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for (%d,%d)", p.X, p.Y)
				}
			}()
			g.At(p.X, p.Y)
		}()
	}
}

func TestGridEachVisitsRowMajor(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	var order []Point
	g.Each(func(x, y int, _ Cell) { order = append(order, Point{X: x, Y: y}) })
	if len(order) != 6 {
		t.Fatalf("expected 6 visits, got %d", len(order))
	}
	if order[1] != (Point{X: 1, Y: 0}) || order[3] != (Point{X: 0, Y: 1}) {
		t.Fatalf("unexpected visit order %v", order)
	}
}

func TestBiomeNames(t *testing.T) {
	for _, b := range Biomes() {
		name := b.String()
		if name == "unknown" || name == "" {
			t.Fatalf("biome %d has no name", b)
		}
		parsed, ok := ParseBiome(name)
		if !ok || parsed != b {
			t.Fatalf("ParseBiome(%q) = %v, %v", name, parsed, ok)
		}
	}
	if Biome(200).Valid() {
		t.Fatal("out of range biome reported as valid")
	}
	if !BiomeDeepOcean.IsWater() || BiomeBeach.IsWater() || !BiomeBeach.IsShore() {
		t.Fatal("unexpected water classification")
	}
}
