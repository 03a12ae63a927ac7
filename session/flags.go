package session

import (
	"flag"

	"grid-snake/game"
	"grid-snake/game/types"
)

// Flags holds the command line settings shared by both hosts
type Flags struct {
	Difficulty string
	GridSize   int
	Reward     int
	Seed       uint64
	Autopilot  bool
	Mute       bool
}

func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Difficulty, "difficulty", "easy", "Starting speed: easy, medium or hard")
	fs.IntVar(&f.GridSize, "grid", types.DefaultGridSize, "Cells per side of the square grid (2-100)")
	fs.IntVar(&f.Reward, "reward", types.DefaultReward, "Points per food eaten")
	fs.Uint64Var(&f.Seed, "seed", 0, "Random seed for food placement (0 = time based)")
	fs.BoolVar(&f.Autopilot, "autopilot", false, "Let the Q-learning agent steer")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound")
	return f
}

// Config turns the flags into a validated game config and a starting
// difficulty
func (f *Flags) Config() (game.Config, types.Difficulty, error) {
	difficulty, err := types.ParseDifficulty(f.Difficulty)
	if err != nil {
		return game.Config{}, types.Easy, err
	}
	cfg := game.DefaultConfig()
	cfg.GridSize = f.GridSize
	cfg.Reward = f.Reward
	cfg.Seed = f.Seed
	cfg.Start = types.Point{X: f.GridSize / 2, Y: f.GridSize / 2}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, types.Easy, err
	}
	return cfg, difficulty, nil
}

// Options builds session options from the flags
func (f *Flags) Options(difficulty types.Difficulty, cue Cue) Options {
	return Options{
		Difficulty: difficulty,
		Autopilot:  f.Autopilot,
		AgentSeed:  f.Seed,
		Cue:        cue,
	}
}
