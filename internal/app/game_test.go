package app

import (
	"go-wave-spawner/internal/component"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/defs"
	"go-wave-spawner/internal/event"
	"go-wave-spawner/internal/system"
	"testing"
)

func testSetup() Setup {
	defs.EnemyLibrary = map[string]defs.EnemyDefinition{
		"GRUNT": {ID: "GRUNT", Health: 50, Speed: 100},
	}
	pools := make(map[defs.PoolID]defs.PoolDefinition)
	for _, b := range defs.DefaultPoolBindings {
		pools[b.Pool] = defs.PoolDefinition{
			ID: b.Pool, Waves: b.Waves, Capacity: 3,
			Enemies: []defs.PoolEntry{{EnemyID: "GRUNT", Weight: 1}},
		}
	}
	return Setup{
		Spawn: config.SpawnConfig{
			SpawnMode:      config.SpawnFixed,
			EnemyCount:     3,
			DelayBtwWaves:  0.5,
			DelayBtwSpawns: 0.2,
		},
		Bindings: defs.DefaultPoolBindings,
		Pools:    pools,
		Route: system.Route{
			Origin: component.Point{X: 0, Y: 0},
			Points: []component.Point{{X: 50, Y: 0}, {X: 50, Y: 50}},
		},
		Seed:      3,
		StartWave: 1,
	}
}

func TestGameRunsWavesToCompletion(t *testing.T) {
	g, err := NewGameFromSetup(testSetup())
	if err != nil {
		t.Fatalf("NewGameFromSetup() error: %v", err)
	}
	defer g.Close()

	completed := 0
	g.EventDispatcher.Subscribe(event.WaveCompleted, event.ListenerFunc(func(event.Event) { completed++ }))

	for frame := 0; frame < 10000 && completed < 3; frame++ {
		g.Update(1.0 / 60)
	}

	if completed != 3 {
		t.Fatalf("completed %d waves, want 3", completed)
	}
	if g.Level.CurrentWave() != 4 {
		t.Errorf("current wave: got %d, want 4", g.Level.CurrentWave())
	}
	_, escaped := g.Stats()
	if escaped != 9 {
		t.Errorf("escaped: got %d, want 9", escaped)
	}
	// Пул не должен расти: каждая волна переиспользует тех же врагов
	if p, _ := g.Pools.Get("wave_1_10"); p.Size() != 3 {
		t.Errorf("pool size: got %d, want 3", p.Size())
	}
}

func TestGameKillsCountTowardsWave(t *testing.T) {
	g, err := NewGameFromSetup(testSetup())
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	g.Update(0.01)
	if !g.DamageAt(0, 0, 1000) {
		t.Fatal("DamageAt missed the freshly spawned enemy")
	}
	killed, _ := g.Stats()
	if killed != 1 {
		t.Errorf("killed: got %d, want 1", killed)
	}
	if got := g.Spawner.State().EnemiesRemaining; got != 2 {
		t.Errorf("remaining: got %d, want 2", got)
	}
	if g.DamageAt(500, 500, 1000) {
		t.Error("DamageAt hit empty space")
	}
}

func TestGamePauseAndSpeed(t *testing.T) {
	g, err := NewGameFromSetup(testSetup())
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	g.SetPaused(true)
	g.Update(1)
	if g.GameTime() != 0 || g.Spawner.State().EnemiesSpawned != 0 {
		t.Errorf("paused game advanced")
	}
	g.SetPaused(false)

	g.ToggleSpeed()
	g.Update(1)
	if g.GameTime() != 2 {
		t.Errorf("game time at x2: got %v, want 2", g.GameTime())
	}
	g.ToggleSpeed()
	g.ToggleSpeed()
	if g.SpeedMultiplier != 1 {
		t.Errorf("speed did not wrap to x1: %v", g.SpeedMultiplier)
	}
}

func TestGameRejectsUnknownPool(t *testing.T) {
	setup := testSetup()
	delete(setup.Pools, "wave_41_50")
	if _, err := NewGameFromSetup(setup); err == nil {
		t.Error("expected error for binding without pool")
	}
}

func TestNewGameFromAssets(t *testing.T) {
	g, err := NewGame(Options{
		SpawnConfigPath: "../../" + config.SpawnConfigPath,
		EnemyDefsPath:   "../../" + config.EnemyDefsPath,
		PoolDefsPath:    "../../" + config.PoolBindingsPath,
		Seed:            11,
	})
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	defer g.Close()

	for i := 0; i < 600; i++ {
		g.Update(1.0 / 60)
		Attrition(g, 0.2, 40)
	}
	if g.Spawner.State().EnemiesSpawned == 0 {
		t.Error("nothing spawned from asset configuration")
	}
}
