package vector

import "github.com/tacotaha/svp/numeric"

// GaussReduce pair-reduces self against v in place (spec §4.1): if
// ||v||^2 < |2*<self,v>|, subtract round(<self,v>/||v||^2)*v from self,
// refresh self's cached norm, and report true. Otherwise self is left
// unchanged and GaussReduce reports false.
//
// Iterating GaussReduce(u, v) to a fixpoint establishes the 60-degree
// property 2*|<u,v>| <= ||v||^2 (spec §8, invariant 4).
func GaussReduce[I any](ops numeric.IntOps[I], self, v *Vector[I]) bool {
	ip := DotInt(ops, *self, *v)
	twoIP := ops.Abs(ops.Add(ip, ip))
	if ops.Cmp(*v.Norm, twoIP) < 0 {
		q := ops.DivRound(ip, *v.Norm)
		for i := range self.Vec {
			self.Vec[i] = ops.Sub(self.Vec[i], ops.Mul(q, v.Vec[i]))
		}
		UpdateNormInt(ops, self)
		return true
	}
	return false
}
