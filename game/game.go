package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
)

var (
	ErrInvalidConfig       = errors.New("invalid config")
	ErrInvalidFoodPosition = errors.New("invalid food position")
	ErrInvariantViolation  = errors.New("invariant violation")
)

// Config is fixed for the lifetime of a Game
type Config struct {
	GridSize int
	Reward   int
	Start    types.Point
	Speeds   types.SpeedTable
	Seed     uint64 // 0 seeds from the wall clock
}

func DefaultConfig() Config {
	return Config{
		GridSize: types.DefaultGridSize,
		Reward:   types.DefaultReward,
		Start:    types.Point{X: types.DefaultGridSize / 2, Y: types.DefaultGridSize / 2},
		Speeds:   types.DefaultSpeeds(),
	}
}

func (c Config) Validate() error {
	if c.GridSize < 2 || c.GridSize > types.MaxGridSize {
		return fmt.Errorf("grid size %d outside [2, %d]: %w", c.GridSize, types.MaxGridSize, ErrInvalidConfig)
	}
	if c.Reward <= 0 {
		return fmt.Errorf("reward %d must be positive: %w", c.Reward, ErrInvalidConfig)
	}
	if !types.NewSquareGrid(c.GridSize).Contains(c.Start) {
		return fmt.Errorf("start %v outside %dx%d grid: %w", c.Start, c.GridSize, c.GridSize, ErrInvalidConfig)
	}
	for _, d := range []types.Difficulty{types.Easy, types.Medium, types.Hard} {
		if iv, ok := c.Speeds[d]; !ok || iv <= 0 {
			return fmt.Errorf("no positive tick interval for %v: %w", d, ErrInvalidConfig)
		}
	}
	return nil
}

type Option func(*Game)

// WithLogger routes lifecycle logging to l
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Snapshot is a read-only copy of the session handed to renderers
type Snapshot struct {
	SessionID    string
	GridSize     int
	Chain        []types.Point
	Food         types.Point
	HasFood      bool
	Score        int
	Direction    types.Direction
	Phase        types.Phase
	HighScore    int
	AverageScore float64
	GamesPlayed  int
}

// Game is a single-player session. All methods are safe for concurrent use,
// so input may arrive from a different goroutine than the one ticking.
type Game struct {
	sessionID string
	Grid      types.Grid
	config    Config

	snake      *entity.Snake
	score      int
	foodActive bool

	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager

	logger *log.Logger
	mu     sync.Mutex
}

func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := types.NewSquareGrid(cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		sessionID:    uuid.New().String(),
		Grid:         grid,
		config:       cfg,
		snake:        entity.NewSnake(cfg.Start),
		collisionMgr: collisionMgr,
		foodManager:  manager.NewFoodManager(grid, collisionMgr, seed),
		stateManager: manager.NewStateManager(),
		logger:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.generateFood()
	return g, nil
}

func (g *Game) Config() Config {
	return g.config
}

// Start begins a NotStarted session. Once a session has run, Start behaves
// like Restart.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stateManager.Start() {
		g.logger.Printf("session %s started", g.sessionID)
		return
	}
	g.restart()
}

func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stateManager.Pause() {
		g.logger.Printf("session %s paused", g.sessionID)
	}
}

func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stateManager.Resume() {
		g.logger.Printf("session %s resumed", g.sessionID)
	}
}

// TogglePause flips between Running and Paused
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stateManager.Pause() {
		g.logger.Printf("session %s paused", g.sessionID)
	} else if g.stateManager.Resume() {
		g.logger.Printf("session %s resumed", g.sessionID)
	}
}

// Restart reinitializes the session and enters Running from any phase
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.restart()
}

func (g *Game) restart() {
	g.sessionID = uuid.New().String()
	g.snake.Reset(g.config.Start)
	g.score = 0
	g.generateFood()
	g.stateManager.Restart()
	g.logger.Printf("session %s started", g.sessionID)
}

// SetDirection records a movement intent for the next tick. Reversals and
// calls outside Running are ignored.
func (g *Game) SetDirection(dir types.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.stateManager.IsRunning() {
		return
	}
	g.snake.SetDirection(dir)
}

// Tick advances the session by one step. Outside Running it changes nothing.
func (g *Game) Tick() types.TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.stateManager.IsRunning() {
		return types.TickResult{Outcome: types.Continued, Score: g.score}
	}

	newHead := g.snake.Commit()
	feeding := g.foodActive && g.collisionMgr.IsFoodCollision(newHead, g.foodManager.GetFood())

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake, feeding); collision != types.NoCollision {
		g.end()
		g.logger.Printf("session %s over: %v at %v, score %d", g.sessionID, collision, newHead, g.score)
		return types.TickResult{Outcome: types.GameOver, Score: g.score, Cause: collision}
	}

	g.snake.Move(newHead)
	if !feeding {
		g.snake.RemoveTail()
		return types.TickResult{Outcome: types.Continued, Score: g.score}
	}

	g.score += g.config.Reward
	if !g.generateFood() {
		g.end()
		g.logger.Printf("session %s won, score %d", g.sessionID, g.score)
		return types.TickResult{Outcome: types.Won, Score: g.score}
	}
	return types.TickResult{Outcome: types.Fed, Score: g.score}
}

func (g *Game) end() {
	g.stateManager.End(g.score)
}

// GenerateFood moves the target to a new random free cell. Returns false
// when no free cell exists.
func (g *Game) GenerateFood() (types.Point, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ok := g.generateFood()
	return g.foodManager.GetFood(), ok
}

func (g *Game) generateFood() bool {
	_, ok := g.foodManager.GenerateFood(g.snake)
	g.foodActive = ok
	return ok
}

// PlaceFood forces the target onto p
func (g *Game) PlaceFood(p types.Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.foodManager.PlaceFood(p, g.snake) {
		return fmt.Errorf("%v: %w", p, ErrInvalidFoodPosition)
	}
	g.foodActive = true
	return nil
}

func (g *Game) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateManager.IsRunning()
}

func (g *Game) Phase() types.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateManager.Phase()
}

func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// PendingDirection is the intent that the next tick will commit
func (g *Game) PendingDirection() types.Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.Pending
}

func (g *Game) Stats() manager.GameStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateManager.GetStats()
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := g.stateManager.GetStats()
	return Snapshot{
		SessionID:    g.sessionID,
		GridSize:     g.config.GridSize,
		Chain:        g.snake.Cells(),
		Food:         g.foodManager.GetFood(),
		HasFood:      g.foodActive,
		Score:        g.score,
		Direction:    g.snake.Direction,
		Phase:        g.stateManager.Phase(),
		HighScore:    stats.HighScore,
		AverageScore: stats.AverageScore(),
		GamesPlayed:  stats.GamesPlayed,
	}
}

// CheckInvariants reports chain and target corruption. A non-nil result is
// always a bug.
func (g *Game) CheckInvariants() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	body := g.snake.Body
	if len(body) == 0 {
		return fmt.Errorf("empty chain: %w", ErrInvariantViolation)
	}

	seen := make(map[types.Point]struct{}, len(body))
	for i, p := range body {
		if !g.Grid.Contains(p) {
			return fmt.Errorf("cell %d at %v is off the grid: %w", i, p, ErrInvariantViolation)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("cell %d at %v overlaps the chain: %w", i, p, ErrInvariantViolation)
		}
		seen[p] = struct{}{}
		if i > 0 && manhattan(body[i-1], p) != 1 {
			return fmt.Errorf("cells %d and %d are not adjacent: %w", i-1, i, ErrInvariantViolation)
		}
	}

	if g.foodActive {
		food := g.foodManager.GetFood()
		if !g.Grid.Contains(food) {
			return fmt.Errorf("target %v is off the grid: %w", food, ErrInvariantViolation)
		}
		if _, on := seen[food]; on {
			return fmt.Errorf("target %v is on the chain: %w", food, ErrInvariantViolation)
		}
	}
	return nil
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
