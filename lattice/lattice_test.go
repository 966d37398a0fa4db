package lattice

import (
	"math"
	"testing"

	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/vector"
)

func intBasis(rows [][]int64) Lattice[int64] {
	basis := make([]vector.Vector[int64], len(rows))
	for i, r := range rows {
		basis[i] = vector.New(append([]int64(nil), r...))
	}
	return Lattice[int64]{Basis: basis}
}

func TestGSOSumOfNorms(t *testing.T) {
	reg := numeric.Machine()

	b1 := intBasis([][]int64{{1, 1, 0}, {1, 2, 0}, {0, 1, 2}})
	gs1 := GSO(reg, b1)
	var sum1 float64
	for _, g := range gs1 {
		sum1 += *g.Norm
	}
	if math.Abs(sum1-6.5) > 1e-9 {
		t.Fatalf("sum of GSO norms = %v, want 6.5", sum1)
	}

	b2 := intBasis([][]int64{{1, -1, 1}, {1, 0, 1}, {1, 1, 2}})
	gs2 := GSO(reg, b2)
	var sum2 float64
	for _, g := range gs2 {
		sum2 += *g.Norm
	}
	if math.Round(sum2) != 4 {
		t.Fatalf("sum of GSO norms = %v, want ~4.0", sum2)
	}
}

func TestGSOOrthogonality(t *testing.T) {
	reg := numeric.Machine()
	b := intBasis([][]int64{{1, 1, 0}, {1, 2, 0}, {0, 1, 2}})
	gs := GSO(reg, b)
	for i := range gs {
		for j := range gs {
			if i == j {
				continue
			}
			ip := vector.DotReal(reg.Real, gs[i], gs[j])
			if math.Abs(ip) > 1e-9 {
				t.Fatalf("gs[%d] . gs[%d] = %v, want ~0", i, j, ip)
			}
		}
	}
}

func TestProductRoundTrip(t *testing.T) {
	ops := numeric.Machine().Int
	b := intBasis([][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	c := vector.New([]int64{2, -3, 5})
	r := Product(ops, b, c)
	want := vector.DotInt(ops, r, r)
	if *r.Norm != want {
		t.Fatalf("r.Norm = %d, want %d", *r.Norm, want)
	}
	if r.Vec[0] != 2 || r.Vec[1] != -3 || r.Vec[2] != 5 {
		t.Fatalf("r.Vec = %v, want [2 -3 5]", r.Vec)
	}
}

func TestProductRealCoefTruncatesTowardZero(t *testing.T) {
	reg := numeric.Machine()
	b := intBasis([][]int64{{1, 0}, {0, 1}})
	c := vector.New([]float64{2.9, -2.9})
	r := ProductRealCoef(reg, b, c)
	if r.Vec[0] != 2 || r.Vec[1] != -2 {
		t.Fatalf("r.Vec = %v, want [2 -2] (truncated toward zero)", r.Vec)
	}
}
