package game

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"grid-snake/game/types"
)

// Small fixed map for tests
const (
	testGridSize = 20
	testSeed     = 12345
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = testSeed
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// setChain replaces the chain and moves the target off it if needed
func setChain(t *testing.T, g *Game, dir types.Direction, cells ...types.Point) {
	t.Helper()
	g.snake.Body = append([]types.Point(nil), cells...)
	g.snake.Direction = dir
	g.snake.Pending = dir
	if g.snake.Occupies(g.foodManager.GetFood(), false) {
		g.generateFood()
	}
}

func mustInvariants(t *testing.T, g *Game) {
	t.Helper()
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Phase != types.NotStarted {
		t.Errorf("Expected NotStarted, got %v", snap.Phase)
	}
	if len(snap.Chain) != 1 || snap.Chain[0] != (types.Point{X: 10, Y: 10}) {
		t.Errorf("Expected chain [(10,10)], got %v", snap.Chain)
	}
	if snap.Direction != types.Right {
		t.Errorf("Expected direction right, got %v", snap.Direction)
	}
	if snap.Score != 0 {
		t.Errorf("Expected score 0, got %d", snap.Score)
	}
	if !snap.HasFood {
		t.Error("Expected a target at construction")
	}
	if snap.SessionID == "" {
		t.Error("Expected a session ID")
	}
	mustInvariants(t, g)
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.GridSize = 1 }},
		{"huge grid", func(c *Config) { c.GridSize = types.MaxGridSize + 1 }},
		{"zero reward", func(c *Config) { c.Reward = 0 }},
		{"start outside", func(c *Config) { c.Start = types.Point{X: 20, Y: 0} }},
		{"missing speed", func(c *Config) { delete(c.Speeds, types.Hard) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewGame(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestTickOutsideRunningIsNoop(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()

	res := g.Tick()
	if res.Outcome != types.Continued {
		t.Errorf("Expected Continued, got %v", res.Outcome)
	}
	after := g.Snapshot()
	if after.Chain[0] != before.Chain[0] {
		t.Errorf("Tick before Start moved the chain: %v -> %v", before.Chain, after.Chain)
	}

	g.Start()
	g.Pause()
	paused := g.Snapshot()
	g.Tick()
	if g.Snapshot().Chain[0] != paused.Chain[0] {
		t.Error("Tick while paused moved the chain")
	}
}

func TestFeedScenario(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	if err := g.PlaceFood(types.Point{X: 11, Y: 10}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}

	res := g.Tick()
	if res.Outcome != types.Fed || res.Score != 10 {
		t.Fatalf("Expected Fed(10), got %v(%d)", res.Outcome, res.Score)
	}

	snap := g.Snapshot()
	if len(snap.Chain) != 2 || snap.Chain[0] != (types.Point{X: 11, Y: 10}) {
		t.Errorf("Expected head (11,10) and length 2, got %v", snap.Chain)
	}
	if snap.Food == (types.Point{X: 11, Y: 10}) {
		t.Error("New target placed on the consumed cell")
	}
	if snap.Score != 10 {
		t.Errorf("Expected score 10, got %d", snap.Score)
	}
	mustInvariants(t, g)
}

func TestMoveScenario(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	setChain(t, g, types.Right,
		types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})
	if err := g.PlaceFood(types.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}

	res := g.Tick()
	if res.Outcome != types.Continued {
		t.Fatalf("Expected Continued, got %v", res.Outcome)
	}
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	got := g.Snapshot().Chain
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Chain[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
	if g.Score() != 0 {
		t.Errorf("Score changed without feeding: %d", g.Score())
	}
	mustInvariants(t, g)
}

func TestDirectionReversalGuard(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	setChain(t, g, types.Right, types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5})
	if err := g.PlaceFood(types.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}

	g.SetDirection(types.Left)
	if g.PendingDirection() != types.Right {
		t.Fatalf("Reverse intent was stored: %v", g.PendingDirection())
	}
	res := g.Tick()
	if res.Outcome != types.Continued {
		t.Fatalf("Expected Continued, got %v", res.Outcome)
	}
	if head := g.Snapshot().Chain[0]; head != (types.Point{X: 6, Y: 5}) {
		t.Errorf("Expected to keep moving right to (6,5), got %v", head)
	}
}

func TestValidTurnSurvivesRejectedReverse(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	setChain(t, g, types.Right, types.Point{X: 5, Y: 5})
	if err := g.PlaceFood(types.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}

	g.SetDirection(types.Down)
	g.SetDirection(types.Left) // reverse of committed Right
	g.Tick()

	snap := g.Snapshot()
	if snap.Chain[0] != (types.Point{X: 5, Y: 6}) || snap.Direction != types.Down {
		t.Errorf("Expected head (5,6) heading down, got %v heading %v", snap.Chain[0], snap.Direction)
	}
}

func TestSetDirectionIgnoredOutsideRunning(t *testing.T) {
	g := newTestGame(t)
	g.SetDirection(types.Up)
	if g.PendingDirection() != types.Right {
		t.Errorf("Intent stored before Start: %v", g.PendingDirection())
	}

	g.Start()
	g.Pause()
	g.SetDirection(types.Up)
	if g.PendingDirection() != types.Right {
		t.Errorf("Intent stored while paused: %v", g.PendingDirection())
	}
}

func TestBoundaryTermination(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	setChain(t, g, types.Left, types.Point{X: 0, Y: 7})

	res := g.Tick()
	if res.Outcome != types.GameOver || res.Cause != types.WallCollision {
		t.Fatalf("Expected GameOver by wall, got %v/%v", res.Outcome, res.Cause)
	}
	snap := g.Snapshot()
	if snap.Phase != types.Over {
		t.Errorf("Expected Over, got %v", snap.Phase)
	}
	if snap.Direction != types.Left {
		t.Errorf("Expected committed direction Left at game over, got %v", snap.Direction)
	}
	if snap.Chain[0] != (types.Point{X: 0, Y: 7}) || len(snap.Chain) != 1 {
		t.Errorf("Chain mutated on game over: %v", snap.Chain)
	}

	// Further ticks are no-ops
	if g.Tick().Outcome != types.Continued {
		t.Error("Tick after game over should be a no-op")
	}
	mustInvariants(t, g)
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	// Head at (5,5) moving left, body wraps around so (5,4) is mid-body
	setChain(t, g, types.Left,
		types.Point{X: 5, Y: 5},
		types.Point{X: 6, Y: 5},
		types.Point{X: 6, Y: 4},
		types.Point{X: 5, Y: 4},
		types.Point{X: 4, Y: 4},
		types.Point{X: 3, Y: 4},
	)
	if err := g.PlaceFood(types.Point{X: 0, Y: 19}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}
	g.SetDirection(types.Up)

	res := g.Tick()
	if res.Outcome != types.GameOver || res.Cause != types.SelfCollision {
		t.Fatalf("Expected GameOver by self collision, got %v/%v", res.Outcome, res.Cause)
	}
	if g.Phase() != types.Over {
		t.Errorf("Expected Over, got %v", g.Phase())
	}
}

func TestMovingIntoVacatingTailIsAllowed(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	// 2x2 loop, tail (5,6) is directly below the head
	setChain(t, g, types.Left,
		types.Point{X: 5, Y: 5},
		types.Point{X: 6, Y: 5},
		types.Point{X: 6, Y: 6},
		types.Point{X: 5, Y: 6},
	)
	if err := g.PlaceFood(types.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}
	g.SetDirection(types.Down)

	res := g.Tick()
	if res.Outcome != types.Continued {
		t.Fatalf("Expected the tail chase to continue, got %v/%v", res.Outcome, res.Cause)
	}
	if head := g.Snapshot().Chain[0]; head != (types.Point{X: 5, Y: 6}) {
		t.Errorf("Expected head on the old tail (5,6), got %v", head)
	}
	mustInvariants(t, g)
}

func TestWonOnFullGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 2
	cfg.Start = types.Point{X: 0, Y: 0}
	cfg.Seed = 3
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Start()
	setChain(t, g, types.Up,
		types.Point{X: 0, Y: 0}, types.Point{X: 0, Y: 1}, types.Point{X: 1, Y: 1})
	if err := g.PlaceFood(types.Point{X: 1, Y: 0}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}
	g.SetDirection(types.Right)

	res := g.Tick()
	if res.Outcome != types.Won {
		t.Fatalf("Expected Won, got %v", res.Outcome)
	}
	snap := g.Snapshot()
	if snap.Phase != types.Over || snap.HasFood {
		t.Errorf("Expected Over without target, got %v hasFood=%v", snap.Phase, snap.HasFood)
	}
	if len(snap.Chain) != 4 {
		t.Errorf("Expected full chain of 4, got %d", len(snap.Chain))
	}
	mustInvariants(t, g)
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	firstSession := g.Snapshot().SessionID
	if err := g.PlaceFood(types.Point{X: 11, Y: 10}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}
	g.Tick()
	if err := g.PlaceFood(types.Point{X: 0, Y: 19}); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}
	g.SetDirection(types.Up)
	for g.Phase() == types.Running {
		g.Tick()
	}

	g.Restart()
	snap := g.Snapshot()
	if snap.Phase != types.Running {
		t.Errorf("Expected Running after restart, got %v", snap.Phase)
	}
	if len(snap.Chain) != 1 || snap.Chain[0] != (types.Point{X: 10, Y: 10}) {
		t.Errorf("Expected chain [(10,10)], got %v", snap.Chain)
	}
	if snap.Score != 0 || snap.Direction != types.Right || g.PendingDirection() != types.Right {
		t.Errorf("Restart left score=%d dir=%v pending=%v", snap.Score, snap.Direction, g.PendingDirection())
	}
	if snap.SessionID == firstSession {
		t.Error("Restart should open a new session ID")
	}
	if snap.HighScore != 10 || snap.GamesPlayed != 1 || snap.AverageScore != 10 {
		t.Errorf("Expected high score 10 and average 10 over 1 game, got %d, %.1f over %d",
			snap.HighScore, snap.AverageScore, snap.GamesPlayed)
	}
	mustInvariants(t, g)
}

func TestStartAfterGameBehavesLikeRestart(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.Tick()
	g.Start()

	snap := g.Snapshot()
	if snap.Phase != types.Running || snap.Chain[0] != (types.Point{X: 10, Y: 10}) {
		t.Errorf("Expected fresh running session, got %v at %v", snap.Phase, snap.Chain[0])
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	g.TogglePause()
	if g.Phase() != types.NotStarted {
		t.Fatalf("Toggle before start should be ignored, got %v", g.Phase())
	}
	g.Start()
	g.TogglePause()
	if g.Phase() != types.Paused {
		t.Fatalf("Expected Paused, got %v", g.Phase())
	}
	g.TogglePause()
	if g.Phase() != types.Running {
		t.Fatalf("Expected Running, got %v", g.Phase())
	}
	g.Pause()
	g.Resume()
	if g.Phase() != types.Running {
		t.Errorf("Expected Running after Pause/Resume, got %v", g.Phase())
	}
}

func TestPlaceFoodRejectsInvalidCells(t *testing.T) {
	g := newTestGame(t)
	for _, p := range []types.Point{{X: 10, Y: 10}, {X: -1, Y: 0}, {X: 0, Y: testGridSize}} {
		if err := g.PlaceFood(p); !errors.Is(err, ErrInvalidFoodPosition) {
			t.Errorf("%v: expected ErrInvalidFoodPosition, got %v", p, err)
		}
	}
}

func TestGenerateFood(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 50; i++ {
		food, ok := g.GenerateFood()
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if !g.Grid.Contains(food) || food == (types.Point{X: 10, Y: 10}) {
			t.Fatalf("Invalid target %v", food)
		}
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	tests := []struct {
		name  string
		chain []types.Point
	}{
		{"empty", nil},
		{"overlap", []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 1}}},
		{"gap", []types.Point{{X: 1, Y: 1}, {X: 3, Y: 1}}},
		{"diagonal", []types.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"off grid", []types.Point{{X: -1, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.snake.Body = tt.chain
			if err := g.CheckInvariants(); !errors.Is(err, ErrInvariantViolation) {
				t.Errorf("Expected ErrInvariantViolation, got %v", err)
			}
		})
	}

	g := newTestGame(t)
	g.foodManager.PlaceFood(types.Point{X: 0, Y: 0}, g.snake)
	g.snake.Body = []types.Point{{X: 0, Y: 0}}
	if err := g.CheckInvariants(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected target-on-chain violation, got %v", err)
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.Chain[0] = types.Point{X: 0, Y: 0}
	if g.Snapshot().Chain[0] != (types.Point{X: 10, Y: 10}) {
		t.Error("Snapshot chain aliases game state")
	}
}

func TestLoggerReceivesLifecycle(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Seed = testSeed
	g, err := NewGame(cfg, WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Start()
	g.SetDirection(types.Up)
	for g.Phase() == types.Running {
		g.Tick()
	}

	out := buf.String()
	if !strings.Contains(out, "started") || !strings.Contains(out, "over") {
		t.Errorf("Unexpected log output: %q", out)
	}
}

// Random walk driven by a seeded pseudo-input. Every reachable state must
// satisfy the chain and target invariants, growth must add exactly one cell
// and the reward, and plain moves must conserve length.
func TestRandomWalkProperties(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 8
	cfg.Start = types.Point{X: 4, Y: 4}
	cfg.Seed = 99
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	dirs := []types.Direction{types.Up, types.Right, types.Down, types.Left}
	state := uint32(7)
	next := func() int {
		state = state*1664525 + 1013904223
		return int(state >> 24)
	}

	for game := 0; game < 30; game++ {
		g.Restart()
		for step := 0; step < 400 && g.Phase() == types.Running; step++ {
			before := g.Snapshot()
			// Steer towards the target most of the time so the chain grows
			if next()%4 != 0 {
				g.SetDirection(towards(before.Chain[0], before.Food))
			} else {
				g.SetDirection(dirs[next()%4])
			}

			res := g.Tick()
			after := g.Snapshot()
			switch res.Outcome {
			case types.Fed:
				if len(after.Chain) != len(before.Chain)+1 {
					t.Fatalf("Growth: %d -> %d", len(before.Chain), len(after.Chain))
				}
				if after.Score != before.Score+cfg.Reward {
					t.Fatalf("Reward: %d -> %d", before.Score, after.Score)
				}
			case types.Continued:
				if len(after.Chain) != len(before.Chain) {
					t.Fatalf("Length conservation: %d -> %d", len(before.Chain), len(after.Chain))
				}
			}
			mustInvariants(t, g)
		}
	}
}

func towards(from, to types.Point) types.Direction {
	switch {
	case to.X > from.X:
		return types.Right
	case to.X < from.X:
		return types.Left
	case to.Y > from.Y:
		return types.Down
	default:
		return types.Up
	}
}
