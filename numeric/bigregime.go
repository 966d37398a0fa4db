package numeric

import (
	"math"
	"math/big"
)

// DefaultPrecision is the arbitrary-precision regime's default working
// precision in bits (spec §3).
const DefaultPrecision = 128

// Big returns the arbitrary-precision regime: I = *big.Int, R = *big.Float
// at the given precision prec (in bits). All intermediate results are
// computed at prec, per spec §4.2's numeric contract.
func Big(prec uint) Regime[*big.Int, *big.Float] {
	return Regime[*big.Int, *big.Float]{
		Name: "big",
		Int: IntOps[*big.Int]{
			Zero: func() *big.Int { return new(big.Int) },
			Add:  func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
			Sub:  func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
			Mul:  func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
			Neg:  func(a *big.Int) *big.Int { return new(big.Int).Neg(a) },
			Abs:  func(a *big.Int) *big.Int { return new(big.Int).Abs(a) },
			Cmp:  func(a, b *big.Int) int { return a.Cmp(b) },
			DivRound: roundedQuotient,
			FromInt64: func(n int64) *big.Int { return big.NewInt(n) },
			String:    func(a *big.Int) string { return a.String() },
		},
		Real: RealOps[*big.Float]{
			Zero: func() *big.Float { return new(big.Float).SetPrec(prec) },
			One:  func() *big.Float { return new(big.Float).SetPrec(prec).SetInt64(1) },
			Add:  func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Add(a, b) },
			Sub:  func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(a, b) },
			Mul:  func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(a, b) },
			Quo:  func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Quo(a, b) },
			Neg:  func(a *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Neg(a) },
			Abs:  func(a *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Abs(a) },
			Sqrt: func(a *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sqrt(a) },
			Floor: func(a *big.Float) *big.Float { return floorBig(a, prec) },
			Ceil:  func(a *big.Float) *big.Float { return ceilBig(a, prec) },
			Round: func(a *big.Float) *big.Float { return roundBig(a, prec) },
			// big.Float has no transcendental functions; exp is computed
			// at machine (53-bit) precision and lifted back, which spec
			// §3 explicitly allows for sampler internals.
			Exp: func(a *big.Float) *big.Float {
				f, _ := a.Float64()
				return new(big.Float).SetPrec(prec).SetFloat64(math.Exp(f))
			},
			Cmp:         func(a, b *big.Float) int { return a.Cmp(b) },
			FromFloat64: func(f float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(f) },
			Float64: func(a *big.Float) float64 {
				f, _ := a.Float64()
				return f
			},
			String: func(a *big.Float) string { return a.Text('g', 10) },
		},
		IntToReal: func(i *big.Int) *big.Float { return new(big.Float).SetPrec(prec).SetInt(i) },
		RealToIntTrunc: func(r *big.Float) *big.Int {
			i, _ := r.Int(nil)
			return i
		},
	}
}

// roundedQuotient computes round(a/b), ties broken away from zero; the
// ordinary-rounding sibling of ntru/rounding.go's RoundAwayFromZero,
// operating on exact *big.Int quotients instead of float64.
func roundedQuotient(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	twiceR := new(big.Int).Abs(r)
	twiceR.Lsh(twiceR, 1)
	absB := new(big.Int).Abs(b)
	if twiceR.Cmp(absB) >= 0 {
		if (a.Sign() < 0) != (b.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// floorBig rounds a down toward negative infinity at precision prec.
func floorBig(a *big.Float, prec uint) *big.Float {
	i, acc := a.Int(nil)
	f := new(big.Float).SetPrec(prec).SetInt(i)
	if acc == big.Exact {
		return f
	}
	if a.Sign() < 0 {
		return new(big.Float).SetPrec(prec).Sub(f, big.NewFloat(1))
	}
	return f
}

// ceilBig rounds a up toward positive infinity at precision prec.
func ceilBig(a *big.Float, prec uint) *big.Float {
	i, acc := a.Int(nil)
	f := new(big.Float).SetPrec(prec).SetInt(i)
	if acc == big.Exact {
		return f
	}
	if a.Sign() > 0 {
		return new(big.Float).SetPrec(prec).Add(f, big.NewFloat(1))
	}
	return f
}

// roundBig rounds a to the nearest integer, ties away from zero.
func roundBig(a *big.Float, prec uint) *big.Float {
	half := big.NewFloat(0.5)
	if a.Sign() >= 0 {
		shifted := new(big.Float).SetPrec(prec).Add(a, half)
		return floorBig(shifted, prec)
	}
	shifted := new(big.Float).SetPrec(prec).Sub(a, half)
	return ceilBig(shifted, prec)
}
