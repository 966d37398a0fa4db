// Package sampler implements the Klein discrete-Gaussian sampler over a
// lattice's Gram-Schmidt orthogonalization (GPV08), as described in
// spec §4.3: a one-shot setup from a GSO, a rejection-sampled
// one-dimensional discrete Gaussian over the integers, and the
// SampleD/Sample lattice-point draws built on it.
package sampler
