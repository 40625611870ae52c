// internal/entity/ecs.go
package entity

import (
	"go-wave-spawner/internal/component"
	"go-wave-spawner/internal/types"
	"sort"
	"sync"
)

// ECS хранит компоненты в отдельных map по типу.
// Системы работают с map из одного логического потока. Пулы могут работать
// из разных горутин, поэтому создание врагов (CreateEnemy) и всё, что пулы
// читают или пишут в map, идёт под мьютексом (WithLock).
type ECS struct {
	mu          sync.Mutex
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	ecs.mu.Lock()
	defer ecs.mu.Unlock()
	return ecs.newEntityLocked()
}

func (ecs *ECS) newEntityLocked() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// WithLock выполняет fn под мьютексом ECS.
// Внутри fn нельзя вызывать NewEntity, CreateEnemy и сам WithLock.
func (ecs *ECS) WithLock(fn func()) {
	ecs.mu.Lock()
	defer ecs.mu.Unlock()
	fn()
}

// EnemyComponents — начальный набор компонентов врага
type EnemyComponents struct {
	Enemy      component.Enemy
	Health     component.Health
	Speed      float64
	Renderable component.Renderable
}

// CreateEnemy атомарно создаёт сущность врага со всеми компонентами.
// Враг создаётся неактивным.
func (ecs *ECS) CreateEnemy(c EnemyComponents) types.EntityID {
	ecs.mu.Lock()
	defer ecs.mu.Unlock()

	id := ecs.newEntityLocked()
	enemy := c.Enemy
	enemy.Active = false
	health := c.Health
	render := c.Renderable
	ecs.Enemies[id] = &enemy
	ecs.Healths[id] = &health
	ecs.Renderables[id] = &render
	ecs.Velocities[id] = &component.Velocity{Speed: c.Speed}
	ecs.Positions[id] = &component.Position{}
	ecs.Paths[id] = &component.Path{}
	return id
}

// ActiveEnemyCount — число врагов на поле
func (ecs *ECS) ActiveEnemyCount() int {
	n := 0
	for _, enemy := range ecs.Enemies {
		if enemy.Active {
			n++
		}
	}
	return n
}

// IsActiveEnemy сообщает, что сущность — активный враг.
func (ecs *ECS) IsActiveEnemy(id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	return ok && enemy.Active
}

// ActiveEnemies возвращает ID активных врагов по возрастанию,
// чтобы системы обходили их в детерминированном порядке.
func (ecs *ECS) ActiveEnemies() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id, enemy := range ecs.Enemies {
		if enemy.Active {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
