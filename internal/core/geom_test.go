package core

import "testing"

func TestDirTurns(t *testing.T) {
	tests := []struct {
		name        string
		dir         Dir
		right, left Dir
	}{
		{"up", DirUp, DirRight, DirLeft},
		{"right", DirRight, DirDown, DirUp},
		{"down", DirDown, DirLeft, DirRight},
		{"left", DirLeft, DirUp, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.TurnRight(); got != tc.right {
				t.Errorf("TurnRight() = %v, expected %v", got, tc.right)
			}
			if got := tc.dir.TurnLeft(); got != tc.left {
				t.Errorf("TurnLeft() = %v, expected %v", got, tc.left)
			}
		})
	}
}

func TestDirTurnCycle(t *testing.T) {
	// Four right turns (or four left turns) return to the original facing.
	for d := DirUp; d <= DirLeft; d++ {
		if d.TurnRight().TurnRight().TurnRight().TurnRight() != d {
			t.Errorf("four right turns from %v did not return to %v", d, d)
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("left then right from %v did not return to %v", d, d)
		}
		if d.Opposite() != d.TurnRight().TurnRight() {
			t.Errorf("Opposite() of %v disagrees with two right turns", d)
		}
	}
}

func TestCoordStep(t *testing.T) {
	tests := []struct {
		dir      Dir
		expected Coord
	}{
		{DirUp, C(5, 4)},
		{DirRight, C(6, 5)},
		{DirDown, C(5, 6)},
		{DirLeft, C(4, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := C(5, 5).Step(tc.dir); got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestCoordStepNoBoundsCheck(t *testing.T) {
	// Movement is pure: stepping off the grid must produce the
	// out-of-bounds cell, not clamp it.
	got := C(0, 0).Step(DirLeft)
	if got != C(-1, 0) {
		t.Errorf("Step(left) from origin = %v, expected (-1,0)", got)
	}
}

func TestArenaContains(t *testing.T) {
	a := Arena{Width: 10, Height: 8}

	tests := []struct {
		name     string
		pos      Coord
		expected bool
	}{
		{"inside", C(5, 5), true},
		{"origin", C(0, 0), true},
		{"bottom-right corner", C(9, 7), true},
		{"right edge exclusive", C(10, 5), false},
		{"bottom edge exclusive", C(5, 8), false},
		{"negative x", C(-1, 5), false},
		{"negative y", C(5, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Contains(tc.pos); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestParseDir(t *testing.T) {
	for _, d := range []Dir{DirUp, DirRight, DirDown, DirLeft} {
		parsed, err := ParseDir(d.String())
		if err != nil {
			t.Fatalf("ParseDir(%q) failed: %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("ParseDir(%q) = %v, expected %v", d.String(), parsed, d)
		}
	}

	if _, err := ParseDir("diagonal"); err == nil {
		t.Error("ParseDir should reject unknown direction names")
	}
}

func TestManhattan(t *testing.T) {
	if d := C(1, 2).Manhattan(C(4, -2)); d != 7 {
		t.Errorf("Manhattan = %d, expected 7", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
