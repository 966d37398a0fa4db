// Package sieve implements the Gauss Sieve (MV10): a heuristic algorithm
// that repeatedly draws lattice points from a Klein sampler, pairwise
// reduces them against a growing reduced list, and halts once
// collisions against the list dominate fresh insertions (spec §4.4).
package sieve
