// Package session drives one game for an interactive host: it owns the
// stepper, the optional autopilot and the audio cues, and turns key
// commands into lifecycle calls.
package session

import (
	"io"
	"log"
	"time"

	"grid-snake/ai"
	"grid-snake/game"
	"grid-snake/game/clock"
	"grid-snake/game/types"
	"grid-snake/ui/hud"
)

// Cue reacts to tick results
type Cue interface {
	Play(res types.TickResult)
}

type silent struct{}

func (silent) Play(types.TickResult) {}

type Options struct {
	Difficulty types.Difficulty
	Autopilot  bool
	AgentSeed  uint64
	Cue        Cue
	Logger     *log.Logger
}

// Session satisfies clock.Simulation itself, so toggling the autopilot
// never swaps what the stepper drives.
type Session struct {
	game    *game.Game
	stepper *clock.Stepper
	pilot   *ai.Pilot
	cue     Cue
	logger  *log.Logger

	difficulty types.Difficulty
	autopilot  bool
}

func New(g *game.Game, opts Options) (*Session, error) {
	s := &Session{
		game:       g,
		pilot:      ai.NewPilot(g, ai.NewQLearning(opts.AgentSeed)),
		cue:        opts.Cue,
		logger:     opts.Logger,
		difficulty: opts.Difficulty,
		autopilot:  opts.Autopilot,
	}
	if s.cue == nil {
		s.cue = silent{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}

	stepper, err := clock.NewStepper(s, g.Config().Speeds.Interval(opts.Difficulty))
	if err != nil {
		return nil, err
	}
	s.stepper = stepper
	return s, nil
}

func (s *Session) IsRunning() bool {
	return s.game.IsRunning()
}

// Tick runs one step, through the autopilot when it is on
func (s *Session) Tick() types.TickResult {
	var res types.TickResult
	if s.autopilot {
		res = s.pilot.Tick()
	} else {
		res = s.game.Tick()
	}
	s.cue.Play(res)
	return res
}

// Frame feeds one frame's elapsed time to the stepper
func (s *Session) Frame(elapsed time.Duration) (int, types.TickResult) {
	return s.stepper.Advance(elapsed)
}

// Steer forwards a player direction. The autopilot owns steering while on.
func (s *Session) Steer(dir types.Direction) {
	if s.autopilot {
		return
	}
	s.game.SetDirection(dir)
}

// StartOrPause starts a fresh or finished game and toggles pause otherwise
func (s *Session) StartOrPause() {
	switch s.game.Phase() {
	case types.Running, types.Paused:
		s.game.TogglePause()
	default:
		s.game.Start()
		s.stepper.Reset()
	}
}

func (s *Session) Restart() {
	s.game.Restart()
	s.stepper.Reset()
}

// SetDifficulty changes the tick interval from the next frame on. The game
// itself keeps running.
func (s *Session) SetDifficulty(d types.Difficulty) error {
	if err := s.stepper.SetInterval(s.game.Config().Speeds.Interval(d)); err != nil {
		return err
	}
	if d != s.difficulty {
		s.logger.Printf("difficulty %v, tick %v", d, s.stepper.Interval())
	}
	s.difficulty = d
	return nil
}

func (s *Session) ToggleAutopilot() bool {
	s.autopilot = !s.autopilot
	s.logger.Printf("autopilot %v", s.autopilot)
	return s.autopilot
}

func (s *Session) Snapshot() game.Snapshot {
	return s.game.Snapshot()
}

func (s *Session) Status() hud.Status {
	return hud.Status{
		Difficulty: s.difficulty,
		Autopilot:  s.autopilot,
		AgentGames: s.pilot.Agent().GamesPlayed,
		Ticks:      s.stepper.TickCount(),
	}
}

func (s *Session) Agent() *ai.QLearning {
	return s.pilot.Agent()
}
