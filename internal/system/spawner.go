// internal/system/spawner.go
package system

import (
	"fmt"
	"go-wave-spawner/internal/component"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/defs"
	"go-wave-spawner/internal/entity"
	"go-wave-spawner/internal/event"
	"go-wave-spawner/internal/pool"
	"go-wave-spawner/internal/utils"
	"log"
)

// WaveAuthority сообщает номер текущей волны.
type WaveAuthority interface {
	CurrentWave() int
}

// Route — откуда выходят враги и по каким точкам идут.
type Route struct {
	Origin component.Point
	Points []component.Point
}

// Spawner выпускает врагов волны по таймеру и считает, сколько их ещё не учтено.
// Когда последний враг убит или дошёл до конца, рассылает WaveCompleted и
// через DelayBtwWaves начинает следующую волну.
type Spawner struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	scheduler  *Scheduler
	pools      *pool.Registry
	waves      WaveAuthority
	rng        *utils.PRNGService
	cfg        config.SpawnConfig
	bindings   defs.PoolBindings
	route      Route

	state     component.WaveState
	nextWave  *Timer
	subs      []*event.Subscription
	lastErr   error
	completed int
}

func NewSpawner(
	ecs *entity.ECS,
	dispatcher *event.Dispatcher,
	scheduler *Scheduler,
	pools *pool.Registry,
	waves WaveAuthority,
	rng *utils.PRNGService,
	cfg config.SpawnConfig,
	bindings defs.PoolBindings,
	route Route,
) (*Spawner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spawn config: %w", err)
	}
	if err := bindings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pool bindings: %w", err)
	}

	s := &Spawner{
		ecs:        ecs,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		pools:      pools,
		waves:      waves,
		rng:        rng,
		cfg:        cfg,
		bindings:   append(defs.PoolBindings(nil), bindings...),
		route:      route,
		state:      component.WaveState{EnemiesRemaining: cfg.EnemyCount},
	}
	s.subs = []*event.Subscription{
		dispatcher.Subscribe(event.EnemyKilled, s),
		dispatcher.Subscribe(event.EnemyReachedEnd, s),
	}
	return s, nil
}

// Update продвигает таймер спавна. Вызывается раз в кадр.
func (s *Spawner) Update(deltaTime float64) {
	s.state.SpawnTimer -= deltaTime
	if s.state.SpawnTimer > 0 {
		return
	}
	s.state.SpawnTimer = s.SpawnDelay()
	if s.state.EnemiesSpawned >= s.cfg.EnemyCount {
		return
	}

	// Счётчик растёт даже если спавн не удался
	s.state.EnemiesSpawned++
	if err := s.spawnOne(); err != nil {
		s.lastErr = err
		log.Printf("[Spawner] spawn skipped: %v", err)
		s.dispatcher.Dispatch(event.Event{Type: event.SpawnFailed, Data: err})
	}
}

// SpawnDelay возвращает паузу до следующего спавна.
// В режиме SpawnRandom — равномерно из [MinRandomDelay, MaxRandomDelay).
func (s *Spawner) SpawnDelay() float64 {
	if s.cfg.SpawnMode == config.SpawnFixed {
		return s.cfg.DelayBtwSpawns
	}
	return s.rng.Range(s.cfg.MinRandomDelay, s.cfg.MaxRandomDelay)
}

func (s *Spawner) spawnOne() error {
	wave := s.waves.CurrentWave()
	poolID, ok := s.bindings.Select(wave)
	if !ok {
		return &defs.NoPoolBoundError{Wave: wave}
	}
	p, ok := s.pools.Get(poolID)
	if !ok {
		return fmt.Errorf("pool %s bound to wave %d is not registered", poolID, wave)
	}

	id, err := p.Acquire()
	if err != nil {
		return fmt.Errorf("failed to acquire enemy from %s: %w", poolID, err)
	}

	s.ecs.Paths[id].Points = s.route.Points
	p.Reset(id)
	pos := s.ecs.Positions[id]
	pos.X, pos.Y = s.route.Origin.X, s.route.Origin.Y
	s.ecs.Enemies[id].Active = true

	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return nil
}

// OnEvent учитывает убитого или дошедшего до конца врага.
func (s *Spawner) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled && e.Type != event.EnemyReachedEnd {
		return
	}
	if s.state.EnemiesRemaining <= 0 {
		// Волна уже закрыта, ждём следующую
		return
	}
	s.state.EnemiesRemaining--
	if s.state.EnemiesRemaining > 0 {
		return
	}

	s.completed++
	log.Printf("[Spawner] wave completed, next in %.2fs", s.cfg.DelayBtwWaves)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted})
	s.nextWave = s.scheduler.After(s.cfg.DelayBtwWaves, s.startNextWave)
}

func (s *Spawner) startNextWave() {
	s.nextWave = nil
	s.state = component.WaveState{
		SpawnTimer:       0,
		EnemiesSpawned:   0,
		EnemiesRemaining: s.cfg.EnemyCount,
	}
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.waves.CurrentWave()})
}

// Reset отменяет ожидание следующей волны, убирает с поля врагов прошлой
// волны и сразу начинает новую. Снятые враги не засчитываются новой волне.
func (s *Spawner) Reset() {
	if s.nextWave != nil {
		s.nextWave.Cancel()
	}
	if n := s.pools.ReleaseActive(); n > 0 {
		log.Printf("[Spawner] reset: %d enemies returned to pools", n)
	}
	s.startNextWave()
}

// Close отписывает спавнер от событий и отменяет ожидающую волну.
func (s *Spawner) Close() {
	for _, sub := range s.subs {
		sub.Release()
	}
	s.subs = nil
	if s.nextWave != nil {
		s.nextWave.Cancel()
		s.nextWave = nil
	}
}

// Phase — идёт спавн или ожидание учёта врагов.
func (s *Spawner) Phase() component.WavePhase {
	if s.state.EnemiesSpawned < s.cfg.EnemyCount {
		return component.SpawningPhase
	}
	return component.WaitingPhase
}

// State возвращает копию состояния волны.
func (s *Spawner) State() component.WaveState {
	return s.state
}

// NextWavePending — волна закрыта и идёт пауза перед следующей.
func (s *Spawner) NextWavePending() bool {
	return s.nextWave.Pending()
}

// CompletedWaves — сколько волн закрыл этот спавнер.
func (s *Spawner) CompletedWaves() int {
	return s.completed
}

// LastError — последняя причина пропущенного спавна.
func (s *Spawner) LastError() error {
	return s.lastErr
}

// Config — конфигурация, с которой создан спавнер.
func (s *Spawner) Config() config.SpawnConfig {
	return s.cfg
}
