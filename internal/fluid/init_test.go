package fluid

import (
	"math"
	"testing"
)

func TestInitializeFlatDisturbance(t *testing.T) {
	g, _ := NewGrid(5, 5)
	Initialize(g, 0.5, 0.0)

	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			want := 0.5
			if r == 2 && c == 2 {
				want = 0.9
			}
			if math.Abs(g.Level(r, c)-want) > 1e-12 {
				t.Errorf("cell (%d,%d): expected %.2f, got %f", r, c, want, g.Level(r, c))
			}
		}
	}
}

func TestInitializeDisturbanceCapped(t *testing.T) {
	g, _ := NewGrid(5, 5)
	Initialize(g, 0.8, 0.0)
	if g.Level(2, 2) != 1.0 {
		t.Errorf("expected centre capped at 1, got %f", g.Level(2, 2))
	}
}

func TestInitializeTilt(t *testing.T) {
	g, _ := NewGrid(11, 5)
	Initialize(g, 0.5, 0.1)

	left, right := g.Level(2, 1), g.Level(2, 9)
	if math.Abs(left-0.42) > 1e-9 {
		t.Errorf("expected leftmost interior ~0.42, got %f", left)
	}
	if math.Abs(right-0.58) > 1e-9 {
		t.Errorf("expected rightmost interior ~0.58, got %f", right)
	}
	if left < 0.4 || right > 0.6 {
		t.Errorf("tilt out of [0.4, 0.6]: %f..%f", left, right)
	}

	for r := 1; r <= 3; r++ {
		for c := 2; c <= 9; c++ {
			if g.Level(r, c) <= g.Level(r, c-1) {
				t.Errorf("row %d not increasing at column %d", r, c)
			}
		}
	}

	// a tilted surface gets no centre disturbance
	if math.Abs(g.Level(2, 5)-0.5) > 1e-9 {
		t.Errorf("expected centre at level, got %f", g.Level(2, 5))
	}
}

func TestInitializeClampsTilt(t *testing.T) {
	g, _ := NewGrid(11, 4)
	Initialize(g, 0.05, 1.0)
	if g.Level(1, 1) != 0 {
		t.Errorf("expected clamp to 0, got %f", g.Level(1, 1))
	}
	Initialize(g, 0.95, 1.0)
	if g.Level(1, 9) != 1 {
		t.Errorf("expected clamp to 1, got %f", g.Level(1, 9))
	}
}

func TestInitializeBorder(t *testing.T) {
	g, _ := NewGrid(6, 4)
	Initialize(g, 0.7, 0.3)
	for r := 0; r < 4; r++ {
		for c := 0; c < 6; c++ {
			border := r == 0 || r == 3 || c == 0 || c == 5
			if g.Obstacle(r, c) != border {
				t.Errorf("cell (%d,%d): obstacle=%v", r, c, g.Obstacle(r, c))
			}
			if border && (g.Level(r, c) != 0 || g.Velocity(r, c) != 0) {
				t.Errorf("border cell (%d,%d) not zero", r, c)
			}
		}
	}
}

func TestInitializeTinyGrid(t *testing.T) {
	g, _ := NewGrid(2, 2)
	Initialize(g, 0.5, 0)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if !g.Obstacle(r, c) {
				t.Errorf("cell (%d,%d) should be wall", r, c)
			}
		}
	}
}

func TestDisturbIgnoresWalls(t *testing.T) {
	g, _ := NewGrid(5, 5)
	Initialize(g, 0.5, 0.1)
	if Disturb(g, 0, 2, 0.9) {
		t.Error("disturbed a wall")
	}
	if Disturb(g, 9, 9, 0.9) {
		t.Error("disturbed out of range")
	}
	if !Disturb(g, 1, 1, 1.7) || g.Level(1, 1) != 1 {
		t.Errorf("expected clamped disturbance, got %f", g.Level(1, 1))
	}
}
