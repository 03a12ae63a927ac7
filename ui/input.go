package ui

import (
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Command is a lifecycle request from the keyboard
type Command int

const (
	NoCommand Command = iota
	StartOrPause
	Restart
	SetEasy
	SetMedium
	SetHard
	ToggleAutopilot
	Quit
)

var directionKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// Checked in order, so the first listed key wins when several are pressed
// in one frame
var commandKeys = []struct {
	key int32
	cmd Command
}{
	{rl.KeyQ, Quit},
	{rl.KeyR, Restart},
	{rl.KeySpace, StartOrPause},
	{rl.KeyP, StartOrPause},
	{rl.KeyOne, SetEasy},
	{rl.KeyTwo, SetMedium},
	{rl.KeyThree, SetHard},
	{rl.KeyT, ToggleAutopilot},
}

// PollDirections returns every movement key pressed this frame, in press
// order, so none are lost between ticks
func PollDirections() []types.Direction {
	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := directionKeys[key]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// PollCommand returns the first lifecycle key pressed this frame
func PollCommand() Command {
	for _, ck := range commandKeys {
		if rl.IsKeyPressed(ck.key) {
			return ck.cmd
		}
	}
	return NoCommand
}
