package randsrc

// Source is a process-local uniform-[0,1) stream. sample_z (spec §4.3)
// draws an unbounded number of values from it per call until its
// rejection step accepts.
type Source interface {
	Uniform() float64
}
