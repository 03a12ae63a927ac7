package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Game constants
const (
	DefaultGridSize = 20 // Cells per side
	DefaultReward   = 10 // Score per target consumed
	MaxGridSize     = 100
)

// Point is a single grid cell
type Point struct {
	X, Y int
}

// Add returns p offset by the unit step of d
func (p Point) Add(d Direction) Point {
	delta := d.ToPoint()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns an n x n grid
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the total number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is one of the four cardinal movement directions
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit displacement vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180-degree reverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Phase is the lifecycle state of a session
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	Over
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall-collision"
	case SelfCollision:
		return "self-collision"
	default:
		return "none"
	}
}

// Outcome classifies what a single tick did
type Outcome int

const (
	Continued Outcome = iota
	Fed
	GameOver
	Won // chain fills the whole grid, no cell left for a target
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Fed:
		return "fed"
	case GameOver:
		return "game over"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// TickResult is reported by every tick
type TickResult struct {
	Outcome Outcome
	Score   int           // Score after the tick
	Cause   CollisionType // Set only when Outcome is GameOver
}

// Terminal reports whether the tick ended the session
func (r TickResult) Terminal() bool {
	return r.Outcome == GameOver || r.Outcome == Won
}

// Difficulty selects the tick interval
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts the names produced by String
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("%q: %w", s, ErrUnknownDifficulty)
}

// SpeedTable maps each difficulty to its tick interval
type SpeedTable map[Difficulty]time.Duration

// DefaultSpeeds returns the standard 150/100/70 ms table
func DefaultSpeeds() SpeedTable {
	return SpeedTable{
		Easy:   150 * time.Millisecond,
		Medium: 100 * time.Millisecond,
		Hard:   70 * time.Millisecond,
	}
}

// Interval returns the tick interval for d, falling back to Easy
func (t SpeedTable) Interval(d Difficulty) time.Duration {
	if iv, ok := t[d]; ok {
		return iv
	}
	return t[Easy]
}
