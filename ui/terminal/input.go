package terminal

import (
	"unicode"

	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
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

var directionKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var directionRunes = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

var commandRunes = map[rune]Command{
	' ': StartOrPause,
	'p': StartOrPause,
	'r': Restart,
	'1': SetEasy,
	'2': SetMedium,
	'3': SetHard,
	't': ToggleAutopilot,
	'q': Quit,
}

// KeyDirection maps arrow keys and WASD to a direction
func KeyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	if ev.Key() == tcell.KeyRune {
		d, ok := directionRunes[unicode.ToLower(ev.Rune())]
		return d, ok
	}
	d, ok := directionKeys[ev.Key()]
	return d, ok
}

// KeyCommand maps a key to a lifecycle command
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		return commandRunes[unicode.ToLower(ev.Rune())]
	}
	return NoCommand
}
