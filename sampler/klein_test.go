package sampler

import (
	"math"
	"testing"

	"github.com/tacotaha/svp/lattice"
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/randsrc"
	"github.com/tacotaha/svp/vector"
)

func identityLattice3() lattice.Lattice[int64] {
	rows := [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	basis := make([]vector.Vector[int64], len(rows))
	for i, r := range rows {
		basis[i] = vector.New(r)
	}
	return lattice.Lattice[int64]{Basis: basis}
}

func TestSampleProducesPositiveFiniteSmallNorms(t *testing.T) {
	reg := numeric.Machine()
	l := identityLattice3()
	gs := lattice.GSO(reg, l)
	t_ := math.Log(3)
	rng := randsrc.NewSeeded(1)
	k := New(reg, gs, t_, rng)

	var sum float64
	const draws = 200
	for i := 0; i < draws; i++ {
		v := k.Sample(l)
		if *v.Norm <= 0 {
			t.Fatalf("draw %d: norm = %v, want > 0", i, *v.Norm)
		}
		if math.IsInf(float64(*v.Norm), 0) || math.IsNaN(float64(*v.Norm)) {
			t.Fatalf("draw %d: norm = %v, want finite", i, *v.Norm)
		}
		sum += float64(*v.Norm)
	}

	maxGS := *gs[0].Norm
	for _, g := range gs[1:] {
		if *g.Norm > maxGS {
			maxGS = *g.Norm
		}
	}
	mean := sum / draws
	bound := 50 * t_ * maxGS
	if mean > bound {
		t.Fatalf("mean squared norm %v exceeds generous O(t*max gs norm) bound %v", mean, bound)
	}
}
