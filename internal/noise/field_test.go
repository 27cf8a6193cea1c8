package noise

import (
	"math"
	"testing"
)

func TestPermutationTableDuplicated(t *testing.T) {
	f := New(3)
	table := f.perm
	seen := make(map[int]bool, 256)
	for i := 0; i < 256; i++ {
		v := table[i]
		if v < 0 || v > 255 {
			t.Fatalf("entry %d out of range: %d", i, v)
		}
		if seen[v] {
			t.Fatalf("value %d appears twice in the first half", v)
		}
		seen[v] = true
		if table[i+256] != v {
			t.Fatalf("entry %d not duplicated: %d vs %d", i, v, table[i+256])
		}
	}
}

func TestSampleDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 20
		y := float64(i)*0.53 - 35
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("Sample not deterministic at (%f, %f)", x, y)
		}
		if a.Fractal(x, y, 5, 2, 0.5) != b.Fractal(x, y, 5, 2, 0.5) {
			t.Fatalf("Fractal not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestSampleRange(t *testing.T) {
	f := New(42)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 40000; i++ {
		x := float64(i%200)*0.113 - 11
		y := float64(i/200)*0.071 - 7
		v := f.Sample(x, y)
		if v < -1 || v > 1.01 {
			t.Fatalf("Sample(%f, %f) = %f, out of [-1, 1.01]", x, y, v)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 0.5 {
		t.Fatalf("noise range suspiciously narrow: [%f, %f]", lo, hi)
	}
}

func TestSampleZeroAtLatticePoints(t *testing.T) {
	f := New(9)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			if v := f.Sample(float64(x), float64(y)); v != 0 {
				t.Fatalf("gradient noise at lattice point (%d,%d) = %f, expected 0", x, y, v)
			}
		}
	}
}

func TestSingleOctaveFractalMatchesSample(t *testing.T) {
	f := New(1)
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.29
		y := float64(i) * 0.17
		if got, want := f.Fractal(x, y, 1, 2.0, 0.5), f.Sample(x, y); got != want {
			t.Fatalf("Fractal with one octave = %v, Sample = %v", got, want)
		}
	}
}

func TestFractalUsesEveryOctave(t *testing.T) {
	f := New(5)
	x, y := 0.31, 0.77
	want := (f.Sample(x, y) + 0.5*f.Sample(2*x, 2*y)) / 1.5
	if got := f.Fractal(x, y, 2, 2, 0.5); math.Abs(got-want) > 1e-12 {
		t.Fatalf("two octave fractal = %v, expected %v", got, want)
	}
}

func TestFractalDegenerateInputs(t *testing.T) {
	f := New(5)
	if v := f.Fractal(0.3, 0.4, 0, 2, 0.5); v != 0 {
		t.Fatalf("zero octaves should return 0, got %f", v)
	}
	// Amplitudes 1 and -1 cancel, which must not divide by zero.
	v := f.Fractal(0.3, 0.4, 2, 2, -1)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("cancelled amplitudes produced %f", v)
	}
}

func TestOctaveNoiseSmoothness(t *testing.T) {
	f := New(77)
	prev := f.Fractal(0, 0, 4, 2.0, 0.5)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := f.Fractal(float64(i)*0.01, 0, 4, 2.0, 0.5)
		maxDiff = math.Max(maxDiff, math.Abs(v-prev))
		prev = v
	}
	if maxDiff > 0.5 {
		t.Fatalf("Fractal max step difference = %f, expected smooth transitions", maxDiff)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i)*0.5 + 0.25
		y := float64(i)*0.3 + 0.1
		if a.Sample(x, y) == b.Sample(x, y) {
			same++
		}
	}
	if same > 30 {
		t.Fatalf("different seeds produced %d/100 identical values", same)
	}
}

func TestLayerValidate(t *testing.T) {
	good := Layer{Frequency: 2.2, Octaves: 3, Lacunarity: 2, Persistence: 0.5}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []Layer{
		{Frequency: 2.2, Octaves: 0, Lacunarity: 2, Persistence: 0.5},
		{Frequency: 0, Octaves: 3, Lacunarity: 2, Persistence: 0.5},
		{Frequency: 2.2, Octaves: 3, Lacunarity: -1, Persistence: 0.5},
		{Frequency: 2.2, Octaves: 3, Lacunarity: 2, Persistence: 0},
		{Frequency: math.NaN(), Octaves: 3, Lacunarity: 2, Persistence: 0.5},
	}
	for i, l := range bad {
		if err := l.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, l)
		}
	}
}

func TestBackends(t *testing.T) {
	for _, name := range Backends() {
		a, err := NewSampler(name, 11)
		if err != nil {
			t.Fatalf("backend %q: %v", name, err)
		}
		b, _ := NewSampler(name, 11)
		for i := 0; i < 50; i++ {
			x := float64(i)*0.21 + 0.05
			y := float64(i)*0.13 + 0.4
			va := a.Sample(x, y)
			if va != b.Sample(x, y) {
				t.Fatalf("backend %q not deterministic", name)
			}
			if math.IsNaN(va) || va < -1.5 || va > 1.5 {
				t.Fatalf("backend %q sample %f out of expected range", name, va)
			}
		}
	}
	if _, err := NewSampler("value", 1); err == nil {
		t.Fatal("expected unknown backend error")
	}
	if s, err := NewSampler("", 1); err != nil {
		t.Fatalf("empty backend should default, got %v", err)
	} else if _, ok := s.(*Field); !ok {
		t.Fatalf("empty backend should use the permutation field, got %T", s)
	}
}
