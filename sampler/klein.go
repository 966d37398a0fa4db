package sampler

import (
	"math"

	"github.com/tacotaha/svp/lattice"
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/randsrc"
	"github.com/tacotaha/svp/vector"
)

// KleinSampler is an immutable snapshot of a GSO plus a rejection-tail
// factor t: s2[i] = (max_k gs[k].Norm * t) / gs[i].Norm (spec §3).
type KleinSampler[I, R any] struct {
	reg numeric.Regime[I, R]
	gs  []vector.Vector[R]
	t   R
	s2  []R
	rng randsrc.Source
}

// New builds a KleinSampler from a precomputed GSO gs and rejection-tail
// factor t (positive; callers typically use ln(m)). No RNG use occurs
// during setup.
func New[I, R any](reg numeric.Regime[I, R], gs []vector.Vector[R], t R, rng randsrc.Source) *KleinSampler[I, R] {
	maxNorm := *gs[0].Norm
	for _, g := range gs[1:] {
		if reg.Real.Cmp(*g.Norm, maxNorm) > 0 {
			maxNorm = *g.Norm
		}
	}
	s := reg.Real.Mul(maxNorm, t)
	s2 := make([]R, len(gs))
	for i, g := range gs {
		s2[i] = reg.Real.Quo(s, *g.Norm)
	}
	return &KleinSampler[I, R]{reg: reg, gs: gs, t: t, s2: s2, rng: rng}
}

// sampleZ draws from the one-dimensional discrete Gaussian centered at c
// with variance s2, truncated to [floor(c-s*t), ceil(c+s*t)] and
// accepted via rejection sampling (spec §4.3). The uniform deviates are
// drawn at float64 precision even in the arbitrary-precision regime,
// which spec §3 permits ("sampler internals may use 53").
func (k *KleinSampler[I, R]) sampleZ(c, s2 R) R {
	re := k.reg.Real
	s := re.Sqrt(s2)
	min := re.Floor(re.Sub(c, re.Mul(s, k.t)))
	max := re.Ceil(re.Add(c, re.Mul(s, k.t)))
	delta := re.Sub(max, min)

	for {
		deviate := k.rng.Uniform()
		x := re.Add(min, re.Round(re.Mul(delta, re.FromFloat64(deviate))))
		diff := re.Sub(x, c)
		sq := re.Mul(diff, diff)
		exponent := re.Neg(re.Quo(re.Mul(re.FromFloat64(math.Pi), sq), s2))
		r := re.Float64(re.Exp(exponent))
		if k.rng.Uniform() <= r {
			return x
		}
	}
}

// SampleD draws a real-valued coefficient vector per the SampleD
// algorithm (spec §4.3), working from the highest index down to 0.
func (k *KleinSampler[I, R]) SampleD() []R {
	m := len(k.gs)
	coef := make([]R, m)
	for i := range coef {
		coef[i] = k.reg.Real.Zero()
	}
	for i := m - 1; i >= 0; i-- {
		coef[i] = k.sampleZ(coef[i], k.s2[i])
		for j := 0; j < i; j++ {
			coef[j] = k.reg.Real.Sub(coef[j], k.reg.Real.Mul(coef[i], k.gs[i].Vec[j]))
		}
	}
	return coef
}

// Sample draws a lattice point: coef = SampleD(), returns l·coef.
func (k *KleinSampler[I, R]) Sample(l lattice.Lattice[I]) vector.Vector[I] {
	coef := vector.Vector[R]{Vec: k.SampleD()}
	return lattice.ProductRealCoef(k.reg, l, coef)
}
