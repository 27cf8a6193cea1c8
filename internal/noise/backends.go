package noise

import (
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Backend names accepted by NewSampler.
const (
	BackendPerlin      = "perlin"
	BackendAquilax     = "aquilax"
	BackendOpenSimplex = "opensimplex"
)

const (
	aquilaxAlpha  = 2
	aquilaxBeta   = 2
	aquilaxLayers = 3
)

var backends = map[string]func(seed uint64) Sampler{
	BackendPerlin: func(seed uint64) Sampler { return New(seed) },
	BackendAquilax: func(seed uint64) Sampler {
		return aquilaxSampler{p: perlin.NewPerlin(aquilaxAlpha, aquilaxBeta, aquilaxLayers, int64(seed))}
	},
	BackendOpenSimplex: func(seed uint64) Sampler {
		return simplexSampler{n: opensimplex.New(int64(seed))}
	},
}

// NewSampler constructs the named noise backend seeded with seed.
func NewSampler(backend string, seed uint64) (Sampler, error) {
	if backend == "" {
		backend = BackendPerlin
	}
	ctor, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("noise: unknown backend %q", backend)
	}
	return ctor(seed), nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// aquilaxSampler adapts go-perlin's summed Perlin noise.
type aquilaxSampler struct {
	p *perlin.Perlin
}

func (s aquilaxSampler) Sample(x, y float64) float64 { return s.p.Noise2D(x, y) }

// simplexSampler adapts OpenSimplex noise.
type simplexSampler struct {
	n opensimplex.Noise
}

func (s simplexSampler) Sample(x, y float64) float64 { return s.n.Eval2(x, y) }
