package noise

import (
	"math"

	"terragen/pkg/core"
)

// Field is seeded 2D gradient noise driven by a shuffled permutation table.
// A Field is immutable once constructed and safe for concurrent use.
type Field struct {
	perm [512]int
}

// New builds a Field whose permutation table is the identity sequence 0..255
// shuffled by a generator seeded with seed, then repeated once so corner
// lookups never wrap.
func New(seed uint64) *Field {
	f := &Field{}
	base := core.NewRNG(seed).Permutation(256)
	for i, v := range base {
		f.perm[i] = v
		f.perm[i+256] = v
	}
	return f
}

// Sample returns gradient noise at (x, y). Gradients are at most sqrt(2) long,
// which keeps values within [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255

	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	p := &f.perm
	aa := p[p[xi]+yi]
	ab := p[p[xi]+yi+1]
	ba := p[p[xi+1]+yi]
	bb := p[p[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

// Fractal sums octaves of f. See the package level Fractal.
func (f *Field) Fractal(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	return Fractal(f, x, y, octaves, lacunarity, persistence)
}

// fade applies the quintic curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad picks one of eight gradients (four diagonals, four axes) from the low
// three bits of hash and returns its dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
