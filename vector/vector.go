package vector

import "github.com/tacotaha/svp/numeric"

// Vector is an n-vector of scalars of type T, with an optional cached
// squared norm. If Norm is non-nil it must equal DotInt(v, v) or
// DotReal(v, v), matching T (spec §3).
type Vector[T any] struct {
	Vec  []T
	Norm *T
}

// New wraps vec with no cached norm.
func New[T any](vec []T) Vector[T] {
	return Vector[T]{Vec: vec}
}

// Clone deep-copies v, including its cached norm.
func Clone[T any](v Vector[T]) Vector[T] {
	out := make([]T, len(v.Vec))
	copy(out, v.Vec)
	clone := Vector[T]{Vec: out}
	if v.Norm != nil {
		n := *v.Norm
		clone.Norm = &n
	}
	return clone
}

// DotInt computes the inner product of two integer-typed n-vectors.
// Panics (a precondition violation, spec §4.1) if the vectors are empty
// or of mismatched length.
func DotInt[I any](ops numeric.IntOps[I], u, v Vector[I]) I {
	n := len(u.Vec)
	if n == 0 || n != len(v.Vec) {
		panic("vector.DotInt: length mismatch or empty vector")
	}
	res := ops.Mul(u.Vec[0], v.Vec[0])
	for i := 1; i < n; i++ {
		res = ops.Add(res, ops.Mul(u.Vec[i], v.Vec[i]))
	}
	return res
}

// DotReal computes the inner product of two real-typed n-vectors.
func DotReal[R any](ops numeric.RealOps[R], u, v Vector[R]) R {
	n := len(u.Vec)
	if n == 0 || n != len(v.Vec) {
		panic("vector.DotReal: length mismatch or empty vector")
	}
	res := ops.Mul(u.Vec[0], v.Vec[0])
	for i := 1; i < n; i++ {
		res = ops.Add(res, ops.Mul(u.Vec[i], v.Vec[i]))
	}
	return res
}

// DotMixed computes the inner product of an integer-typed vector u with
// a real-typed vector v, returning a value of the real type at v's
// precision (spec §3: "mixed-type inner products ... return the real
// type at the right operand's precision").
func DotMixed[I, R any](reg numeric.Regime[I, R], u Vector[I], v Vector[R]) R {
	n := len(u.Vec)
	if n == 0 || n != len(v.Vec) {
		panic("vector.DotMixed: length mismatch or empty vector")
	}
	res := reg.Real.Mul(reg.IntToReal(u.Vec[0]), v.Vec[0])
	for i := 1; i < n; i++ {
		res = reg.Real.Add(res, reg.Real.Mul(reg.IntToReal(u.Vec[i]), v.Vec[i]))
	}
	return res
}

// UpdateNormInt sets v.Norm = DotInt(v, v).
func UpdateNormInt[I any](ops numeric.IntOps[I], v *Vector[I]) {
	n := DotInt(ops, *v, *v)
	v.Norm = &n
}

// UpdateNormReal sets v.Norm = DotReal(v, v).
func UpdateNormReal[R any](ops numeric.RealOps[R], v *Vector[R]) {
	n := DotReal(ops, *v, *v)
	v.Norm = &n
}
