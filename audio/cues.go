package audio

import (
	"fmt"
	"time"

	"grid-snake/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine beep
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	FeedTone     = Tone{Freq: 880, Duration: 60 * time.Millisecond}
	GameOverTone = Tone{Freq: 220, Duration: 400 * time.Millisecond}
	WonTone      = Tone{Freq: 1320, Duration: 300 * time.Millisecond}
)

// Cues plays a tone for feed and terminal tick outcomes. A Cues that failed
// to open the speaker, or was muted, stays silent.
type Cues struct {
	enabled bool
	volume  float64
}

// NewCues opens the speaker. The returned Cues is usable even when err is
// non-nil; it just makes no sound.
func NewCues(muted bool) (*Cues, error) {
	c := &Cues{volume: -1}
	if muted {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("speaker init: %w", err)
	}
	c.enabled = true
	return c, nil
}

// ToneFor maps a tick result to its cue
func ToneFor(res types.TickResult) (Tone, bool) {
	switch res.Outcome {
	case types.Fed:
		return FeedTone, true
	case types.GameOver:
		return GameOverTone, true
	case types.Won:
		return WonTone, true
	}
	return Tone{}, false
}

// Play sounds the cue for res, if any
func (c *Cues) Play(res types.TickResult) {
	tone, ok := ToneFor(res)
	if !ok || !c.enabled {
		return
	}
	streamer, err := c.stream(tone)
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

func (c *Cues) stream(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   c.volume,
	}, nil
}

func (c *Cues) Close() {
	if c.enabled {
		speaker.Clear()
		speaker.Close()
		c.enabled = false
	}
}
