package app

import (
	"fmt"
	"go-wave-spawner/internal/component"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/defs"
	"go-wave-spawner/internal/entity"
	"go-wave-spawner/internal/event"
	"go-wave-spawner/internal/level"
	"go-wave-spawner/internal/pool"
	"go-wave-spawner/internal/system"
	"go-wave-spawner/internal/utils"
	"log"
)

// Options — откуда брать данные для игры
type Options struct {
	SpawnConfigPath string
	EnemyDefsPath   string
	PoolDefsPath    string
	Seed            int64
	StartWave       int
	Progress        *level.ProgressStore // может быть nil
}

// Setup — уже загруженные данные игры
type Setup struct {
	Spawn     config.SpawnConfig
	Bindings  defs.PoolBindings
	Pools     map[defs.PoolID]defs.PoolDefinition
	Route     system.Route
	Seed      int64
	StartWave int
	Progress  *level.ProgressStore
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Scheduler       *system.Scheduler
	Pools           *pool.Registry
	Level           *level.Manager
	Spawner         *system.Spawner
	MovementSystem  *system.MovementSystem
	HealthSystem    *system.HealthSystem
	RenderSystem    *system.RenderSystem
	Rng             *utils.PRNGService
	Route           system.Route
	SpeedMultiplier float64

	gameTime float64
	isPaused bool
	escaped  int
	killed   int
}

// NewGame загружает конфигурацию из файлов и собирает игру.
func NewGame(opts Options) (*Game, error) {
	spawnCfg, err := config.LoadSpawnConfig(opts.SpawnConfigPath)
	if err != nil {
		return nil, err
	}
	if err := defs.LoadEnemyDefinitions(opts.EnemyDefsPath); err != nil {
		return nil, err
	}
	bindings, err := defs.LoadPoolDefinitions(opts.PoolDefsPath)
	if err != nil {
		return nil, err
	}
	return NewGameFromSetup(Setup{
		Spawn:     spawnCfg,
		Bindings:  bindings,
		Pools:     defs.PoolLibrary,
		Route:     DefaultRoute(),
		Seed:      opts.Seed,
		StartWave: opts.StartWave,
		Progress:  opts.Progress,
	})
}

// NewGameFromSetup собирает игру из готовых данных.
// Определения врагов берутся из defs.EnemyLibrary.
func NewGameFromSetup(setup Setup) (*Game, error) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	scheduler := system.NewScheduler()
	rng := utils.NewPRNGService(setup.Seed)

	pools, err := pool.NewRegistry(ecs, dispatcher, setup.Pools, rng)
	if err != nil {
		return nil, err
	}
	for _, binding := range setup.Bindings {
		if _, ok := pools.Get(binding.Pool); !ok {
			return nil, fmt.Errorf("binding %s references unknown pool %s", binding.Waves, binding.Pool)
		}
	}

	levelManager := level.NewManager(dispatcher, setup.Progress, setup.StartWave)
	spawner, err := system.NewSpawner(ecs, dispatcher, scheduler, pools, levelManager, rng, setup.Spawn, setup.Bindings, setup.Route)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Scheduler:       scheduler,
		Pools:           pools,
		Level:           levelManager,
		Spawner:         spawner,
		MovementSystem:  system.NewMovementSystem(ecs, dispatcher),
		HealthSystem:    system.NewHealthSystem(ecs, dispatcher),
		RenderSystem:    system.NewRenderSystem(ecs, setup.Route),
		Rng:             rng,
		Route:           setup.Route,
		SpeedMultiplier: 1,
	}
	dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { g.killed++ }))
	dispatcher.Subscribe(event.EnemyReachedEnd, event.ListenerFunc(func(event.Event) { g.escaped++ }))

	log.Printf("Game ready: %s mode, %d enemies per wave, starting at wave %d",
		setup.Spawn.SpawnMode, setup.Spawn.EnemyCount, levelManager.CurrentWave())
	return g, nil
}

// DefaultRoute — змейка через экран слева направо
func DefaultRoute() system.Route {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	return system.Route{
		Origin: component.Point{X: 60, Y: h * 0.2},
		Points: []component.Point{
			{X: w * 0.8, Y: h * 0.2},
			{X: w * 0.8, Y: h * 0.5},
			{X: w * 0.2, Y: h * 0.5},
			{X: w * 0.2, Y: h * 0.8},
			{X: w - 60, Y: h * 0.8},
		},
	}
}

// Update продвигает игру на один кадр
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.Scheduler.Update(dt)
	g.Spawner.Update(dt)
	g.MovementSystem.Update(dt)
}

// DamageAt бьёт ближайшего к точке врага. Возвращает true, если попали.
func (g *Game) DamageAt(x, y float64, damage int) bool {
	id, ok := g.HealthSystem.EnemyAt(x, y, config.ClickRadius)
	if !ok {
		return false
	}
	g.HealthSystem.ApplyDamage(id, damage)
	return true
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// ToggleSpeed переключает скорость x1 → x2 → x4 → x1
func (g *Game) ToggleSpeed() {
	switch g.SpeedMultiplier {
	case 1:
		g.SpeedMultiplier = 2
	case 2:
		g.SpeedMultiplier = 4
	default:
		g.SpeedMultiplier = 1
	}
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Stats — сколько врагов убито и сколько дошло до выхода
func (g *Game) Stats() (killed, escaped int) {
	return g.killed, g.escaped
}

// Close отписывает все компоненты от событий.
func (g *Game) Close() {
	g.Spawner.Close()
	g.Level.Close()
	g.Pools.Close()
	g.Scheduler.Clear()
}

// Attrition с вероятностью chance бьёт случайного активного врага.
// Заменяет башни в безоконном прогоне.
func Attrition(g *Game, chance float64, damage int) {
	if g.Rng.Float64() >= chance {
		return
	}
	active := g.ECS.ActiveEnemies()
	if len(active) == 0 {
		return
	}
	g.HealthSystem.ApplyDamage(active[g.Rng.Intn(len(active))], damage)
}
