package sieve

import (
	"sort"

	"github.com/tacotaha/svp/lattice"
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/randsrc"
	"github.com/tacotaha/svp/sampler"
	"github.com/tacotaha/svp/vector"
)

// GaussSieve runs the Gauss Sieve (MV10) over a lattice B, using a Klein
// sampler K seeded from B's GSO. L holds the current pairwise-reduced
// list and S the stack of vectors still awaiting (re-)reduction.
type GaussSieve[I, R any] struct {
	reg numeric.Regime[I, R]
	B   lattice.Lattice[I]
	K   *sampler.KleinSampler[I, R]
	L   []vector.Vector[I]
	S   []vector.Vector[I]
}

// New builds a GaussSieve from basis b's own GSO, using t as the Klein
// sampler's rejection-tail factor. S is seeded with b's own basis
// vectors, mirroring the canonical constructor in spec §4.4.
func New[I, R any](reg numeric.Regime[I, R], b lattice.Lattice[I], t R, rng randsrc.Source) *GaussSieve[I, R] {
	gs := lattice.GSO(reg, b)
	k := sampler.New(reg, gs, t, rng)

	s := make([]vector.Vector[I], len(b.Basis))
	for i, v := range b.Basis {
		s[i] = vector.Clone(v)
		vector.UpdateNormInt(reg.Int, &s[i])
	}

	return &GaussSieve[I, R]{reg: reg, B: b, K: k, L: nil, S: s}
}

// reduce pairwise-reduces v against the current list in ascending-norm
// order. A successful reduction does not restart the scan immediately:
// the current pass runs to its end, and then a new pass starts from i=0,
// until a full pass makes no reduction.
// If v reduces all the way to the zero vector it is a collision and is
// discarded; otherwise it is inserted (as a clone) just before the first
// list vector with a strictly larger norm, and any list vector beyond
// that point which v in turn reduces is moved out of L and onto S for
// later re-insertion.
func (g *GaussSieve[I, R]) reduce(v *vector.Vector[I]) {
	ops := g.reg.Int
	index := len(g.L)
	reduced := true
	for reduced {
		reduced = false
		index = len(g.L)
		for i := range g.L {
			if ops.Cmp(*g.L[i].Norm, *v.Norm) > 0 {
				index = i
				break
			}
			if vector.GaussReduce(ops, v, &g.L[i]) {
				reduced = true
			}
		}
	}

	if ops.Cmp(*v.Norm, ops.Zero()) == 0 {
		return
	}

	g.L = append(g.L, vector.Vector[I]{})
	copy(g.L[index+1:], g.L[index:])
	g.L[index] = vector.Clone(*v)

	for k := index + 1; k < len(g.L); {
		if vector.GaussReduce(ops, &g.L[k], v) {
			g.S = append(g.S, g.L[k])
			g.L = append(g.L[:k], g.L[k+1:]...)
		} else {
			k++
		}
	}
}

// Sieve runs the main MV10 loop until collisions dominate insertions
// (c < 0.1*ml + 200, spec §4.4), then multiplies B by each list vector
// l[i], reading l[i] as a coefficient vector (as the reference
// implementation does), and returns those products sorted by ascending
// norm. The returned vectors are these products, not the list vectors
// themselves.
func (g *GaussSieve[I, R]) Sieve() []vector.Vector[I] {
	ops := g.reg.Int
	zero := ops.Zero()
	c, ml := 0.0, len(g.L)
	minNorm := *g.S[0].Norm
	for _, v := range g.S[1:] {
		if ops.Cmp(*v.Norm, minNorm) < 0 {
			minNorm = *v.Norm
		}
	}

	for c < 0.1*float64(ml)+200 {
		var v vector.Vector[I]
		if n := len(g.S); n > 0 {
			v = g.S[n-1]
			g.S = g.S[:n-1]
		} else {
			v = g.K.Sample(g.B)
		}

		g.reduce(&v)

		if ops.Cmp(*v.Norm, zero) == 0 {
			c++
		} else if ops.Cmp(*v.Norm, minNorm) < 0 {
			minNorm = *v.Norm
		}

		if len(g.L) > ml {
			ml = len(g.L)
		}
	}

	out := make([]vector.Vector[I], len(g.L))
	for i, l := range g.L {
		out[i] = lattice.Product(ops, g.B, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return ops.Cmp(*out[i].Norm, *out[j].Norm) < 0
	})
	return out
}
