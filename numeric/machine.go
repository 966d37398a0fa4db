package numeric

import "math"

// Machine returns the native-precision regime: I = int64, R = float64.
func Machine() Regime[int64, float64] {
	return Regime[int64, float64]{
		Name: "machine",
		Int: IntOps[int64]{
			Zero: func() int64 { return 0 },
			Add:  func(a, b int64) int64 { return a + b },
			Sub:  func(a, b int64) int64 { return a - b },
			Mul:  func(a, b int64) int64 { return a * b },
			Neg:  func(a int64) int64 { return -a },
			Abs: func(a int64) int64 {
				if a < 0 {
					return -a
				}
				return a
			},
			Cmp: func(a, b int64) int {
				switch {
				case a < b:
					return -1
				case a > b:
					return 1
				default:
					return 0
				}
			},
			DivRound:  func(a, b int64) int64 { return int64(math.Round(float64(a) / float64(b))) },
			FromInt64: func(n int64) int64 { return n },
			String:    func(a int64) string { return formatInt64(a) },
		},
		Real: RealOps[float64]{
			Zero: func() float64 { return 0 },
			One:  func() float64 { return 1 },
			Add:  func(a, b float64) float64 { return a + b },
			Sub:  func(a, b float64) float64 { return a - b },
			Mul:  func(a, b float64) float64 { return a * b },
			Quo:  func(a, b float64) float64 { return a / b },
			Neg:  func(a float64) float64 { return -a },
			Abs:  math.Abs,
			Sqrt: math.Sqrt,
			Floor: math.Floor,
			Ceil:  math.Ceil,
			Round: math.Round,
			Exp:   math.Exp,
			Cmp: func(a, b float64) int {
				switch {
				case a < b:
					return -1
				case a > b:
					return 1
				default:
					return 0
				}
			},
			FromFloat64: func(f float64) float64 { return f },
			Float64:     func(a float64) float64 { return a },
			String:      func(a float64) string { return formatFloat64(a) },
		},
		IntToReal: func(i int64) float64 { return float64(i) },
		// Go's int64(r) conversion truncates toward zero, matching the
		// reference implementation's `as i64` cast.
		RealToIntTrunc: func(r float64) int64 { return int64(r) },
	}
}
