package lattice

import (
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/vector"
)

// GSO computes the classical (non-modified) Gram-Schmidt orthogonalization
// of b's basis (spec §3/§4.2): gs[i] = B[i] - sum_{j<i} mu[i][j]*gs[j],
// with mu[i][j] = <B[j], gs[i]> / <gs[j], gs[j]>. The outer loop ascends
// over i and the inner loop ascends over j<i, both observable orderings
// required by spec §5. Every intermediate is computed at the regime's
// working precision; no reorthogonalization pass is performed.
func GSO[I, R any](reg numeric.Regime[I, R], b Lattice[I]) []vector.Vector[R] {
	n := len(b.Basis)
	gs := make([]vector.Vector[R], n)
	for i := 0; i < n; i++ {
		m := len(b.Basis[i].Vec)
		vec := make([]R, m)
		for k := 0; k < m; k++ {
			vec[k] = reg.IntToReal(b.Basis[i].Vec[k])
		}
		gs[i] = vector.Vector[R]{Vec: vec}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			ip := vector.DotMixed(reg, b.Basis[j], gs[i])
			mu := reg.Real.Quo(ip, *gs[j].Norm)
			for k := range gs[i].Vec {
				gs[i].Vec[k] = reg.Real.Sub(gs[i].Vec[k], reg.Real.Mul(mu, gs[j].Vec[k]))
			}
		}
		vector.UpdateNormReal(reg.Real, &gs[i])
	}
	return gs
}
