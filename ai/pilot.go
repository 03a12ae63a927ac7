package ai

import (
	"grid-snake/game"
	"grid-snake/game/types"
)

// Controllable is the part of a session the pilot needs
type Controllable interface {
	Snapshot() game.Snapshot
	SetDirection(types.Direction)
	Tick() types.TickResult
	IsRunning() bool
}

// Pilot steers a session through SetDirection before every tick and learns
// from the outcome. It satisfies clock.Simulation, so a Stepper can drive it
// in place of the session.
type Pilot struct {
	session Controllable
	agent   *QLearning
}

func NewPilot(session Controllable, agent *QLearning) *Pilot {
	return &Pilot{
		session: session,
		agent:   agent,
	}
}

func (p *Pilot) Agent() *QLearning {
	return p.agent
}

func (p *Pilot) IsRunning() bool {
	return p.session.IsRunning()
}

func (p *Pilot) Tick() types.TickResult {
	snap := p.session.Snapshot()
	if snap.Phase != types.Running {
		return p.session.Tick()
	}

	state := NewState(snap)
	action := p.agent.GetAction(state, snap.Direction.Opposite())
	p.session.SetDirection(action)

	res := p.session.Tick()
	next := state
	if after := p.session.Snapshot(); len(after.Chain) > 0 {
		next = NewState(after)
	}
	p.agent.Update(state, action, next, res)
	if res.Terminal() {
		p.agent.GamesPlayed++
	}
	return res
}
