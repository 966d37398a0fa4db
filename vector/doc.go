// Package vector implements the generic n-Vector value used throughout
// the solver: an ordered sequence of scalars plus an optional cached
// squared norm. It provides the inner products (DotInt, DotReal, DotMixed) and the
// pairwise Gauss reduction step (spec §4.1) that the sieve and GSO build
// on, parameterized over a numeric.Regime so the same code serves both
// the machine and arbitrary-precision regimes.
package vector
