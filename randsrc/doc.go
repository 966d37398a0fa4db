// Package randsrc supplies the uniform-[0,1) stream the Klein sampler
// consumes (spec §6 treats the RNG as an abstract external collaborator).
// Two concrete sources are provided: SeededSource, a deterministic
// math/rand-backed stream for reproducible runs (used by the tests and
// by the svpcli command), and CSPRNGSource, a cryptographically-seeded,
// non-reproducible stream.
package randsrc
