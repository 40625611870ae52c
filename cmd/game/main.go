// cmd/game/main.go
package main

import (
	"flag"
	"go-wave-spawner/internal/app"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/level"
	"go-wave-spawner/internal/state"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	spawnPath := flag.String("spawn", config.SpawnConfigPath, "spawner config (YAML)")
	enemiesPath := flag.String("enemies", config.EnemyDefsPath, "enemy definitions (YAML)")
	poolsPath := flag.String("pools", config.PoolBindingsPath, "pool definitions (YAML)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	wave := flag.Int("wave", 1, "starting wave")
	flag.Parse()

	gdataManager, err := gdata.Open(gdata.Config{AppName: config.ProgressAppName})
	if err != nil {
		log.Printf("Warning: progress will not be saved: %v", err)
		gdataManager = nil
	}

	g, err := app.NewGame(app.Options{
		SpawnConfigPath: *spawnPath,
		EnemyDefsPath:   *enemiesPath,
		PoolDefsPath:    *poolsPath,
		Seed:            *seed,
		StartWave:       *wave,
		Progress:        level.NewProgressStore(gdataManager),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Spawner")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
