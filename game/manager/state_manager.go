package manager

import (
	"grid-snake/game/types"
)

const maxScores = 50 // Score history kept for the running process

// GameStats summarizes finished games of the current process
type GameStats struct {
	HighScore    int
	ScoreHistory []int
	GamesPlayed  int
}

// StateManager tracks the session phase and in-memory statistics.
// Transitions that do not apply to the current phase are ignored.
type StateManager struct {
	phase        types.Phase
	highScore    int
	scoreHistory []int
	gamesPlayed  int
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase:        types.NotStarted,
		scoreHistory: make([]int, 0, maxScores),
	}
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) IsRunning() bool {
	return sm.phase == types.Running
}

// Start moves NotStarted to Running
func (sm *StateManager) Start() bool {
	if sm.phase != types.NotStarted {
		return false
	}
	sm.phase = types.Running
	return true
}

func (sm *StateManager) Pause() bool {
	if sm.phase != types.Running {
		return false
	}
	sm.phase = types.Paused
	return true
}

func (sm *StateManager) Resume() bool {
	if sm.phase != types.Paused {
		return false
	}
	sm.phase = types.Running
	return true
}

// Restart enters Running from any phase
func (sm *StateManager) Restart() {
	sm.phase = types.Running
}

// End finishes a running game and records its score
func (sm *StateManager) End(score int) bool {
	if sm.phase != types.Running {
		return false
	}
	sm.phase = types.Over
	sm.gamesPlayed++
	sm.UpdateScore(score)
	sm.AddToHistory(score)
	return true
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetStats() GameStats {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: history,
		GamesPlayed:  sm.gamesPlayed,
	}
}

// AverageScore over the kept history
func (s GameStats) AverageScore() float64 {
	if len(s.ScoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, score := range s.ScoreHistory {
		sum += score
	}
	return float64(sum) / float64(len(s.ScoreHistory))
}
