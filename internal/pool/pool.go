// internal/pool/pool.go
package pool

import (
	"fmt"
	"go-wave-spawner/internal/component"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/defs"
	"go-wave-spawner/internal/entity"
	"go-wave-spawner/internal/types"
	"go-wave-spawner/internal/utils"
	"log"
	"sync"
)

// EnemyPool выдаёт переиспользуемых врагов одной категории.
// Acquire, Release и Reset безопасны для вызова из разных горутин, в том
// числе на разных пулах одного ECS.
type EnemyPool struct {
	mu     sync.Mutex
	def    defs.PoolDefinition
	ecs    *entity.ECS
	rng    *utils.PRNGService
	free   []types.EntityID
	inPool map[types.EntityID]bool
	size   int
}

// NewEnemyPool создаёт пул и заранее наполняет его def.Capacity врагами.
func NewEnemyPool(ecs *entity.ECS, def defs.PoolDefinition, seed int64) (*EnemyPool, error) {
	if len(def.Enemies) == 0 {
		return nil, fmt.Errorf("pool %s: no enemies", def.ID)
	}
	p := &EnemyPool{
		def:    def,
		ecs:    ecs,
		rng:    utils.NewPRNGService(seed),
		inPool: make(map[types.EntityID]bool),
	}
	for i := 0; i < def.Capacity; i++ {
		id, err := p.create()
		if err != nil {
			return nil, err
		}
		p.free = append(p.free, id)
		p.inPool[id] = true
	}
	return p, nil
}

func (p *EnemyPool) ID() defs.PoolID {
	return p.def.ID
}

// Size — сколько врагов создано пулом всего.
func (p *EnemyPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size
}

// Available — сколько врагов лежит в пуле.
func (p *EnemyPool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Acquire забирает врага из пула или создаёт нового, если пул пуст.
// Враг остаётся неактивным; активирует его вызывающий.
func (p *EnemyPool) Acquire() (types.EntityID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		delete(p.inPool, id)
		return id, nil
	}

	id, err := p.create()
	if err != nil {
		return 0, err
	}
	log.Printf("[Pool] %s grew to %d", p.def.ID, p.size)
	return id, nil
}

// Release деактивирует врага и возвращает его в пул. Повторный возврат игнорируется.
func (p *EnemyPool) Release(id types.EntityID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inPool[id] {
		return
	}
	released := false
	p.ecs.WithLock(func() {
		enemy, ok := p.ecs.Enemies[id]
		if !ok || enemy.PoolID != p.def.ID {
			return
		}
		enemy.Active = false
		released = true
	})
	if !released {
		return
	}
	p.free = append(p.free, id)
	p.inPool[id] = true
}

// Reset возвращает врага к состоянию «только что создан»: полное здоровье,
// начало пути, сброшенные флаги. Нужен, потому что враги переиспользуются.
func (p *EnemyPool) Reset(id types.EntityID) {
	p.ecs.WithLock(func() {
		if health, ok := p.ecs.Healths[id]; ok {
			health.Value = health.Max
		}
		if path, ok := p.ecs.Paths[id]; ok {
			path.CurrentIndex = 0
		}
		if enemy, ok := p.ecs.Enemies[id]; ok {
			enemy.ReachedEnd = false
			enemy.Active = false
		}
	})
}

// create вызывается под p.mu; ecs.mu берёт CreateEnemy (порядок: p.mu, затем ecs.mu).
func (p *EnemyPool) create() (types.EntityID, error) {
	enemyID := p.rng.ChooseWeighted(p.def.Enemies)
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		return 0, fmt.Errorf("pool %s: enemy definition not found for ID: %s", p.def.ID, enemyID)
	}
	radiusFactor := def.Visuals.RadiusFactor
	if radiusFactor <= 0 {
		radiusFactor = 1
	}
	id := p.ecs.CreateEnemy(entity.EnemyComponents{
		Enemy:  component.Enemy{DefID: def.ID, PoolID: p.def.ID},
		Health: component.Health{Value: def.Health, Max: def.Health},
		Speed:  def.Speed,
		Renderable: component.Renderable{
			Color:     def.Visuals.Color.Color(),
			Radius:    float32(config.EnemyRadius * radiusFactor),
			HasStroke: def.Visuals.StrokeWidth > 0,
		},
	})
	p.size++
	return id, nil
}
