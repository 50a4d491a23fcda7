package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/game"
	"github.com/iburimskiy/crymson-fx/internal/host"
	"github.com/iburimskiy/crymson-fx/internal/session"
	"github.com/iburimskiy/crymson-fx/internal/sound"
	"github.com/iburimskiy/crymson-fx/internal/storage"
)

const dialTimeout = 3 * time.Second

func main() {
	env, err := config.LoadEnv(".env")
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	tuning, err := config.LoadTuning(env.TuningPath)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	bridge := host.Connect(ctx, env.HostURL)
	cancel()
	defer bridge.Close()

	g := game.New(game.Deps{
		Env:    env,
		Tuning: tuning,
		Store:  storage.Open(env.AppName),
		Host:   bridge,
		Sound:  sound.NewPlayer(env.Sound),
		Alert:  session.DialogAlerter{Title: config.WindowTitle},
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.FrameRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
