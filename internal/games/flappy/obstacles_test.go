package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnGapRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	st := NewObstacleStream(cfg, 7)

	for i := 0; i < 2000; i++ {
		st.MaybeSpawn(0)
	}

	for i, o := range st.Obstacles() {
		if o.GapTop < 50 || o.GapTop > 340 {
			t.Fatalf("obstacle %d: GapTop = %v outside [50, 340]", i, o.GapTop)
		}
		if o.X != cfg.World.Width {
			t.Fatalf("obstacle %d: X = %v, expected spawn at %v", i, o.X, cfg.World.Width)
		}
		if o.Passed {
			t.Fatalf("obstacle %d: new obstacle should not be passed", i)
		}
	}
}

func TestMaybeSpawnInterval(t *testing.T) {
	st := NewObstacleStream(config.DefaultFlappyConfig(), 1)

	var spawnedAt []int
	for step := 0; step <= 270; step++ {
		if st.MaybeSpawn(step) {
			spawnedAt = append(spawnedAt, step)
		}
	}

	expected := []int{0, 90, 180, 270}
	if len(spawnedAt) != len(expected) {
		t.Fatalf("spawned at %v, expected %v", spawnedAt, expected)
	}
	for i := range expected {
		if spawnedAt[i] != expected[i] {
			t.Errorf("spawned at %v, expected %v", spawnedAt, expected)
			break
		}
	}
}

func TestSpawnEvery(t *testing.T) {
	tests := []struct {
		interval int
		dt       float64
		expected int
	}{
		{90, 1, 90},
		{90, 2, 45},
		{90, 0.5, 180},
		{90, 0, 90},
		{1, 5, 1},
	}

	for _, tc := range tests {
		if got := SpawnEvery(tc.interval, tc.dt); got != tc.expected {
			t.Errorf("SpawnEvery(%d, %v) = %d, expected %d", tc.interval, tc.dt, got, tc.expected)
		}
	}
}

func TestAdvanceMovesLeft(t *testing.T) {
	st := NewObstacleStream(config.DefaultFlappyConfig(), 1)
	st.MaybeSpawn(0)

	st.Advance(1)
	if x := st.Obstacles()[0].X; x != 397 {
		t.Errorf("X = %v, expected 397", x)
	}

	st.Advance(2)
	if x := st.Obstacles()[0].X; x != 391 {
		t.Errorf("X = %v, expected 391", x)
	}
}

func TestMarkPassedScoresOnce(t *testing.T) {
	st := NewObstacleStream(config.DefaultFlappyConfig(), 1)
	st.obstacles = []Obstacle{
		{X: 19, Width: 80, GapHeight: 150}, // trailing edge 99, behind the bird
		{X: 20, Width: 80, GapHeight: 150}, // trailing edge 100, not yet behind
		{X: 300, Width: 80, GapHeight: 150},
	}

	if got := st.MarkPassedAndScore(100); got != 1 {
		t.Fatalf("first pass scored %d, expected 1", got)
	}
	if got := st.MarkPassedAndScore(100); got != 0 {
		t.Errorf("second pass scored %d, expected 0", got)
	}

	st.Advance(1)
	if got := st.MarkPassedAndScore(100); got != 1 {
		t.Errorf("after advance scored %d, expected 1 for the second pipe", got)
	}

	if !st.Obstacles()[0].Passed || !st.Obstacles()[1].Passed || st.Obstacles()[2].Passed {
		t.Errorf("unexpected passed flags: %+v", st.Obstacles())
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	st := NewObstacleStream(config.DefaultFlappyConfig(), 1)
	st.obstacles = []Obstacle{
		{X: -90, Width: 80},
		{X: -81, Width: 80}, // trailing edge -1, off screen
		{X: -80, Width: 80}, // trailing edge 0, still visible
		{X: 50, Width: 80},
		{X: 200, Width: 80},
	}

	st.Prune()

	expected := []float64{-80, 50, 200}
	if st.Len() != len(expected) {
		t.Fatalf("Len() = %d, expected %d: %+v", st.Len(), len(expected), st.Obstacles())
	}
	for i, x := range expected {
		if st.Obstacles()[i].X != x {
			t.Errorf("obstacle %d: X = %v, expected %v", i, st.Obstacles()[i].X, x)
		}
	}
}

func TestStreamDeterministicSeed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewObstacleStream(cfg, 12345)
	b := NewObstacleStream(cfg, 12345)

	for i := 0; i < 10; i++ {
		a.MaybeSpawn(0)
		b.MaybeSpawn(0)
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i].GapTop != b.Obstacles()[i].GapTop {
			t.Fatalf("obstacle %d differs: %v vs %v", i, a.Obstacles()[i].GapTop, b.Obstacles()[i].GapTop)
		}
	}

	// Reset with the same seed replays the sequence
	first := a.Obstacles()[0].GapTop
	a.Reset(12345)
	if a.Len() != 0 {
		t.Fatalf("Reset should clear obstacles, got %d", a.Len())
	}
	a.MaybeSpawn(0)
	if a.Obstacles()[0].GapTop != first {
		t.Errorf("Reset did not reseed: %v vs %v", a.Obstacles()[0].GapTop, first)
	}
}
