// Command snake-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"grid-snake/audio"
	"grid-snake/game"
	"grid-snake/game/clock"
	"grid-snake/game/types"
	"grid-snake/session"
	"grid-snake/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	flags := session.BindFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Append log lines to this file")
	flag.Parse()

	if err := run(flags, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *session.Flags, logPath string) error {
	cfg, difficulty, err := flags.Config()
	if err != nil {
		return err
	}

	// The terminal is in raw mode while playing, so logs only go to a file
	logger := log.New(io.Discard, "", 0)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "snake-term ", log.LstdFlags)
	}

	g, err := game.NewGame(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	cues, err := audio.NewCues(flags.Mute)
	if err != nil {
		// Non-fatal, game can run without sound
		logger.Printf("Audio initialization failed: %v", err)
	}
	defer cues.Close()

	opts := flags.Options(difficulty, cues)
	opts.Logger = logger
	sess, err := session.New(g, opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loop(screen, sess, terminal.NewRenderer(screen))
	logger.Printf("quit, best score %d over %d games", g.Stats().HighScore, g.Stats().GamesPlayed)
	return nil
}

func loop(screen tcell.Screen, sess *session.Session, renderer *terminal.Renderer) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	timer := clock.NewFrameTimer(clock.NewMonotonicTimeProvider())
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(sess, ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			sess.Frame(timer.Elapsed())
			renderer.Draw(sess.Snapshot(), sess.Status())
		}
	}
}

// handleKey applies one key press and returns false on quit
func handleKey(sess *session.Session, ev *tcell.EventKey) bool {
	if dir, ok := terminal.KeyDirection(ev); ok {
		sess.Steer(dir)
		return true
	}
	switch terminal.KeyCommand(ev) {
	case terminal.Quit:
		return false
	case terminal.StartOrPause:
		sess.StartOrPause()
	case terminal.Restart:
		sess.Restart()
	case terminal.SetEasy:
		sess.SetDifficulty(types.Easy)
	case terminal.SetMedium:
		sess.SetDifficulty(types.Medium)
	case terminal.SetHard:
		sess.SetDifficulty(types.Hard)
	case terminal.ToggleAutopilot:
		sess.ToggleAutopilot()
	}
	return true
}
