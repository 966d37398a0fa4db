package sieve

import (
	"math"
	"testing"

	"github.com/tacotaha/svp/lattice"
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/randsrc"
	"github.com/tacotaha/svp/vector"
)

func basisFromRows(rows [][]int64) lattice.Lattice[int64] {
	basis := make([]vector.Vector[int64], len(rows))
	for i, r := range rows {
		basis[i] = vector.New(append([]int64(nil), r...))
	}
	return lattice.Lattice[int64]{Basis: basis}
}

func TestSieveIdentityBasis(t *testing.T) {
	reg := numeric.Machine()
	b := basisFromRows([][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	g := New(reg, b, math.Log(3), randsrc.NewSeeded(42))
	res := g.Sieve()
	if len(res) == 0 {
		t.Fatal("sieve returned no vectors")
	}
	if *res[0].Norm != 1 {
		t.Fatalf("res[0].Norm = %d, want 1", *res[0].Norm)
	}
	for i := 1; i < len(res); i++ {
		if *res[i-1].Norm > *res[i].Norm {
			t.Fatalf("result not sorted ascending at index %d", i)
		}
	}
}

func TestSieveSmallBasis(t *testing.T) {
	reg := numeric.Machine()
	b := basisFromRows([][]int64{{1, 1, 0}, {1, 2, 0}, {0, 1, 2}})
	g := New(reg, b, math.Log(3), randsrc.NewSeeded(7))
	res := g.Sieve()
	if *res[0].Norm != 1 {
		t.Fatalf("res[0].Norm = %d, want 1", *res[0].Norm)
	}
}

func TestSieveDim10Basis(t *testing.T) {
	reg := numeric.Machine()
	b := basisFromRows([][]int64{
		{-1, 0, 1, 0, 1, 0, 0, 0, -1, 1},
		{-2, 2, -1, 0, 2, 3, 0, 1, 0, -2},
		{-3, 1, -1, 1, 0, -4, -1, -2, 0, 0},
		{1, 6, 0, 0, 1, 0, 2, 0, 0, 2},
		{-2, 1, -4, -1, -1, 0, 0, 4, -3, 2},
		{1, 0, -5, -10, 4, -3, -2, 0, 3, 4},
		{5, 0, -4, 4, 6, -6, 0, 4, -9, -7},
		{4, 3, -2, -7, -2, 3, 0, -6, -12, -2},
		{1, 6, 0, 1, -3, 3, -15, 3, -1, 2},
		{0, 3, 11, -9, -5, -4, -3, 8, -1, -7},
	})
	g := New(reg, b, math.Log(10), randsrc.NewSeeded(1234))
	res := g.Sieve()
	if *res[0].Norm != 62 {
		t.Fatalf("res[0].Norm = %d, want 62", *res[0].Norm)
	}
}
