package ai

import (
	"fmt"
	"math"

	"grid-snake/game"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

var directions = [4]types.Direction{types.Up, types.Right, types.Down, types.Left}

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction, indexed by types.Direction
}

// NewState extracts the learning state from a snapshot
func NewState(snap game.Snapshot) State {
	head := snap.Chain[0]
	grid := types.NewSquareGrid(snap.GridSize)

	var s State
	if snap.HasFood {
		s.RelativeFoodDir = [2]int{sign(snap.Food.X - head.X), sign(snap.Food.Y - head.Y)}
		s.FoodDistance = abs(snap.Food.X-head.X) + abs(snap.Food.Y-head.Y)
	}

	// The tail vacates on a plain move, so it is not a danger
	body := snap.Chain
	if len(body) > 1 {
		body = body[:len(body)-1]
	}
	for _, d := range directions {
		next := head.Add(d)
		if !grid.Contains(next) {
			s.DangerDirs[d] = true
			continue
		}
		for _, part := range body {
			if part == next {
				s.DangerDirs[d] = true
				break
			}
		}
	}
	return s
}

func (s State) key() string {
	return fmt.Sprintf("%d,%d|%t,%t,%t,%t",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		s.DangerDirs[types.Up], s.DangerDirs[types.Right],
		s.DangerDirs[types.Down], s.DangerDirs[types.Left])
}

type QTable map[string]map[types.Direction]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	rng          *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (q *QLearning) values(s State) map[types.Direction]float64 {
	k := s.key()
	if _, exists := q.QTable[k]; !exists {
		q.QTable[k] = make(map[types.Direction]float64, len(directions))
		for _, d := range directions {
			q.QTable[k][d] = 0
		}
	}
	return q.QTable[k]
}

// GetAction picks an epsilon-greedy direction, never the forbidden one
func (q *QLearning) GetAction(s State, forbidden types.Direction) types.Direction {
	allowed := make([]types.Direction, 0, len(directions))
	for _, d := range directions {
		if d != forbidden {
			allowed = append(allowed, d)
		}
	}

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return allowed[q.rng.Intn(len(allowed))]
	}

	// Exploitation: best known action, ties broken in direction order
	values := q.values(s)
	best := allowed[0]
	bestValue := math.Inf(-1)
	for _, d := range allowed {
		if values[d] > bestValue {
			bestValue = values[d]
			best = d
		}
	}
	return best
}

// Reward scores a transition: feeding and dying dominate, otherwise moving
// towards the food is encouraged
func Reward(state State, next State, res types.TickResult) float64 {
	switch res.Outcome {
	case types.Fed, types.Won:
		return 1.0
	case types.GameOver:
		return -1.0
	}
	switch change := next.FoodDistance - state.FoodDistance; {
	case change < 0:
		return 0.5
	case change > 0:
		return -0.3
	}
	return 0
}

// Update applies the Q-learning rule and returns the reward
func (q *QLearning) Update(state State, action types.Direction, next State, res types.TickResult) float64 {
	reward := Reward(state, next, res)

	maxNextQ := 0.0
	if !res.Terminal() {
		maxNextQ = math.Inf(-1)
		for _, value := range q.values(next) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	values := q.values(state)
	currentQ := values[action]
	values[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)

	q.TotalReward += reward
	return reward
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
