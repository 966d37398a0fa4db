// Package numeric implements the scalar regime contract shared by the
// lattice, sampler and sieve packages. A regime binds an integer type I
// and a real (floating) type R together with the arithmetic operations
// lattice reduction needs over them, plus the conversions that move
// values between the two. Two regimes are supplied: Machine (int64 /
// float64) and Big (*big.Int / *big.Float at a fixed precision).
package numeric
