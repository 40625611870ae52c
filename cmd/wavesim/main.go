// cmd/wavesim/main.go — прогон волн без окна
package main

import (
	"flag"
	"go-wave-spawner/internal/app"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/event"
	"log"
)

func main() {
	spawnPath := flag.String("spawn", config.SpawnConfigPath, "spawner config (YAML)")
	enemiesPath := flag.String("enemies", config.EnemyDefsPath, "enemy definitions (YAML)")
	poolsPath := flag.String("pools", config.PoolBindingsPath, "pool definitions (YAML)")
	seed := flag.Int64("seed", 1, "random seed")
	wave := flag.Int("wave", 1, "starting wave")
	waves := flag.Int("waves", 5, "stop after this many completed waves")
	frames := flag.Int("frames", 100000, "frame limit")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	hitChance := flag.Float64("hit", 0.05, "chance per frame to hit a random enemy")
	damage := flag.Int("damage", 40, "damage per hit")
	flag.Parse()

	g, err := app.NewGame(app.Options{
		SpawnConfigPath: *spawnPath,
		EnemyDefsPath:   *enemiesPath,
		PoolDefsPath:    *poolsPath,
		Seed:            *seed,
		StartWave:       *wave,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	g.EventDispatcher.Subscribe(event.SpawnFailed, event.ListenerFunc(func(e event.Event) {
		log.Printf("frame spawn failed: %v", e.Data)
	}))

	frame := 0
	for ; frame < *frames && g.Spawner.CompletedWaves() < *waves; frame++ {
		g.Update(*dt)
		app.Attrition(g, *hitChance, *damage)
	}

	killed, escaped := g.Stats()
	log.Printf("Done after %d frames (%.1fs game time): %d waves, %d killed, %d escaped, now at wave %d",
		frame, g.GameTime(), g.Spawner.CompletedWaves(), killed, escaped, g.Level.CurrentWave())
}
