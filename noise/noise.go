// Package noise provides deterministic, continuous 3-D noise fields sampled
// as (x, y, t) and normalised to [0, 1].
package noise

import (
	"fmt"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Kind selects the noise backend
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Perlin generator parameters
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

// Source samples a smooth pseudo-random field at two spatial coordinates and
// one temporal coordinate. Results are in [0, 1]
type Source interface {
	Noise(x, y, t float64) float64
}

// ParseKind resolves a backend name, case-insensitive
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindPerlin, "":
		return KindPerlin, nil
	case KindSimplex:
		return KindSimplex, nil
	default:
		return "", fmt.Errorf("unknown noise backend %q", s)
	}
}

// New creates a seeded source of the requested kind
func New(kind Kind, seed int64) Source {
	if kind == KindSimplex {
		return NewSimplex(seed)
	}
	return NewPerlin(seed)
}

// Perlin wraps classic gradient noise
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin source with a fixed seed
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)}
}

// Noise maps the generator's signed output into [0, 1]
func (n *Perlin) Noise(x, y, t float64) float64 {
	return clamp01((n.p.Noise3D(x, y, t) + 1) / 2)
}

// Simplex wraps OpenSimplex noise
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates a normalised OpenSimplex source with a fixed seed
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

func (n *Simplex) Noise(x, y, t float64) float64 {
	return clamp01(n.n.Eval3(x, y, t))
}

// Func adapts a plain function to Source, used by tests for fixed fields
type Func func(x, y, t float64) float64

func (f Func) Noise(x, y, t float64) float64 {
	return f(x, y, t)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
