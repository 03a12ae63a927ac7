package clock

import (
	"errors"
	"fmt"
	"time"

	"grid-snake/game/types"
)

var ErrInvalidInterval = errors.New("tick interval must be positive")

// Simulation is what a Stepper drives
type Simulation interface {
	Tick() types.TickResult
	IsRunning() bool
}

// Stepper turns elapsed wall-clock time into whole simulation ticks using a
// fixed timestep accumulator
type Stepper struct {
	sim         Simulation
	interval    time.Duration
	accumulator time.Duration
	tickCount   uint64
}

func NewStepper(sim Simulation, interval time.Duration) (*Stepper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%v: %w", interval, ErrInvalidInterval)
	}
	return &Stepper{
		sim:      sim,
		interval: interval,
	}, nil
}

// Advance adds elapsed to the accumulator and runs every whole tick it now
// holds. A terminal tick stops the loop and discards the leftover time.
// While the simulation is not running nothing is consumed, so resuming does
// not replay buffered time.
func (s *Stepper) Advance(elapsed time.Duration) (int, types.TickResult) {
	last := types.TickResult{Outcome: types.Continued}
	if !s.sim.IsRunning() {
		return 0, last
	}
	if elapsed > 0 {
		s.accumulator += elapsed
	}

	ticks := 0
	for s.accumulator >= s.interval {
		if !s.sim.IsRunning() {
			break
		}
		last = s.sim.Tick()
		ticks++
		s.tickCount++
		s.accumulator -= s.interval

		if last.Terminal() {
			s.accumulator = 0
			break
		}
	}
	return ticks, last
}

// SetInterval changes the tick length from the next Advance on. The
// accumulator is kept as is, so the first interval after a change may be
// slightly short or long.
func (s *Stepper) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%v: %w", interval, ErrInvalidInterval)
	}
	s.interval = interval
	return nil
}

func (s *Stepper) Interval() time.Duration {
	return s.interval
}

// Accumulator is the time carried over to the next Advance
func (s *Stepper) Accumulator() time.Duration {
	return s.accumulator
}

// TickCount is the number of ticks run since creation
func (s *Stepper) TickCount() uint64 {
	return s.tickCount
}

// Reset drops any carried-over time
func (s *Stepper) Reset() {
	s.accumulator = 0
}
