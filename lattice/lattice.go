package lattice

import (
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/vector"
)

// Lattice is generated by an ordered, full-rank basis of m n-dimensional
// integer Vectors (spec §3).
type Lattice[I any] struct {
	Basis []vector.Vector[I]
}

// Product computes basis·c for a coefficient vector c of the basis's own
// integer type: res[i] = <basis[i], c>, with res.Norm set to <res,res>.
// No rounding occurs since both operands share type I.
func Product[I any](ops numeric.IntOps[I], b Lattice[I], c vector.Vector[I]) vector.Vector[I] {
	if len(b.Basis) != len(c.Vec) {
		panic("lattice.Product: basis/coefficient length mismatch")
	}
	out := make([]I, len(b.Basis))
	for i := range b.Basis {
		out[i] = vector.DotInt(ops, b.Basis[i], c)
	}
	res := vector.Vector[I]{Vec: out}
	vector.UpdateNormInt(ops, &res)
	return res
}

// ProductRealCoef computes basis·c for a real-typed coefficient vector c
// (as produced by the Klein sampler's SampleD), truncating each
// coordinate of the result toward zero per spec §4.2/§9's second open
// question: res[i] = trunc(<basis[i], c>).
func ProductRealCoef[I, R any](reg numeric.Regime[I, R], b Lattice[I], c vector.Vector[R]) vector.Vector[I] {
	if len(b.Basis) != len(c.Vec) {
		panic("lattice.ProductRealCoef: basis/coefficient length mismatch")
	}
	out := make([]I, len(b.Basis))
	for i := range b.Basis {
		dot := vector.DotMixed(reg, b.Basis[i], c)
		out[i] = reg.RealToIntTrunc(dot)
	}
	res := vector.Vector[I]{Vec: out}
	vector.UpdateNormInt(reg.Int, &res)
	return res
}
