package numeric

import "testing"

func TestMachineIntOps(t *testing.T) {
	reg := Machine()
	if got := reg.Int.Add(3, 4); got != 7 {
		t.Fatalf("Add(3,4) = %d, want 7", got)
	}
	if got := reg.Int.DivRound(7, 2); got != 4 {
		t.Fatalf("DivRound(7,2) = %d, want 4 (round-half-away-from-zero)", got)
	}
	if got := reg.Int.DivRound(-7, 2); got != -4 {
		t.Fatalf("DivRound(-7,2) = %d, want -4", got)
	}
}

func TestMachineRealToIntTruncation(t *testing.T) {
	reg := Machine()
	if got := reg.RealToIntTrunc(2.9); got != 2 {
		t.Fatalf("RealToIntTrunc(2.9) = %d, want 2 (truncate toward zero)", got)
	}
	if got := reg.RealToIntTrunc(-2.9); got != -2 {
		t.Fatalf("RealToIntTrunc(-2.9) = %d, want -2", got)
	}
}

func TestMachineRoundRoundsHalfAwayFromZero(t *testing.T) {
	reg := Machine()
	if got := reg.Real.Round(2.5); got != 3 {
		t.Fatalf("Round(2.5) = %v, want 3", got)
	}
	if got := reg.Real.Round(-2.5); got != -3 {
		t.Fatalf("Round(-2.5) = %v, want -3", got)
	}
}
