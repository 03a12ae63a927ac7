// Package hud builds the text shown around the grid. It is shared by the
// window and terminal renderers.
package hud

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"
)

// Status carries host-side state shown next to the grid
type Status struct {
	Difficulty types.Difficulty
	Autopilot  bool
	AgentGames int    // games finished under the autopilot
	Ticks      uint64 // ticks run since the host started
}

var Help = []string{
	"Arrows/WASD: move",
	"Space/P: start, pause",
	"R: restart",
	"1/2/3: speed",
	"T: autopilot",
	"Esc/Q: quit",
}

// Lines is the stats panel content
func Lines(snap game.Snapshot, status Status) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Best: %d", snap.HighScore),
		fmt.Sprintf("Avg: %.1f", snap.AverageScore),
		fmt.Sprintf("Games: %d", snap.GamesPlayed),
		fmt.Sprintf("Length: %d", len(snap.Chain)),
		fmt.Sprintf("Speed: %s", status.Difficulty),
		fmt.Sprintf("Ticks: %d", status.Ticks),
	}
	if status.Autopilot {
		lines = append(lines, fmt.Sprintf("Autopilot on (%d games)", status.AgentGames))
	}
	return lines
}

// Banner is the centered message for the session phase, empty while running
func Banner(snap game.Snapshot) string {
	switch snap.Phase {
	case types.NotStarted:
		return "Press SPACE to start"
	case types.Paused:
		return "Paused"
	case types.Over:
		if !snap.HasFood {
			return fmt.Sprintf("You win! Score: %d", snap.Score)
		}
		return fmt.Sprintf("Game Over! Score: %d", snap.Score)
	}
	return ""
}
