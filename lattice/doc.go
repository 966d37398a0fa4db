// Package lattice implements the full-rank integer Lattice value, its
// basis·coefficient product, and its classical (non-modified)
// Gram-Schmidt orthogonalization (spec §4.2).
package lattice
