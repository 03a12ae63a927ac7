package main

import (
	"flag"
	"log"

	"grid-snake/audio"
	"grid-snake/game"
	"grid-snake/game/clock"
	"grid-snake/game/types"
	"grid-snake/session"
	"grid-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	flags := session.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, difficulty, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	logger := log.Default()

	g, err := game.NewGame(cfg, game.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	cues, err := audio.NewCues(flags.Mute)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cues.Close()

	opts := flags.Options(difficulty, cues)
	opts.Logger = logger
	sess, err := session.New(g, opts)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(1000, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	timer := clock.NewFrameTimer(clock.NewMonotonicTimeProvider())

	// Esc is raylib's default exit key
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for _, dir := range ui.PollDirections() {
			sess.Steer(dir)
		}
		cmd := ui.PollCommand()
		if cmd == ui.Quit {
			break
		}
		switch cmd {
		case ui.StartOrPause:
			sess.StartOrPause()
		case ui.Restart:
			sess.Restart()
		case ui.SetEasy:
			sess.SetDifficulty(types.Easy)
		case ui.SetMedium:
			sess.SetDifficulty(types.Medium)
		case ui.SetHard:
			sess.SetDifficulty(types.Hard)
		case ui.ToggleAutopilot:
			sess.ToggleAutopilot()
		}

		sess.Frame(timer.Elapsed())
		renderer.Draw(sess.Snapshot(), sess.Status())
	}

	stats := g.Stats()
	log.Printf("best score %d over %d games", stats.HighScore, stats.GamesPlayed)
}
