package pool

import (
	"fmt"
	"go-wave-spawner/internal/defs"
	"go-wave-spawner/internal/entity"
	"go-wave-spawner/internal/event"
	"go-wave-spawner/internal/types"
	"go-wave-spawner/internal/utils"
	"sort"
)

// Registry держит пулы по их ID и возвращает в них учтённых врагов.
type Registry struct {
	ecs   *entity.ECS
	pools map[defs.PoolID]*EnemyPool
	subs  []*event.Subscription
}

// NewRegistry создаёт по пулу на каждое определение. Сиды пулов берутся из rng,
// чтобы состав врагов воспроизводился при одинаковом сиде игры.
func NewRegistry(ecs *entity.ECS, dispatcher *event.Dispatcher, poolDefs map[defs.PoolID]defs.PoolDefinition, rng *utils.PRNGService) (*Registry, error) {
	r := &Registry{
		ecs:   ecs,
		pools: make(map[defs.PoolID]*EnemyPool, len(poolDefs)),
	}

	ids := make([]string, 0, len(poolDefs))
	for id := range poolDefs {
		ids = append(ids, string(id))
	}
	sort.Strings(ids) // порядок обхода map случаен, а сиды должны совпадать

	for _, id := range ids {
		def := poolDefs[defs.PoolID(id)]
		p, err := NewEnemyPool(ecs, def, int64(rng.Intn(1<<30))+1)
		if err != nil {
			return nil, fmt.Errorf("failed to create pool: %w", err)
		}
		r.pools[def.ID] = p
	}

	if dispatcher != nil {
		r.subs = append(r.subs,
			dispatcher.Subscribe(event.EnemyKilled, r),
			dispatcher.Subscribe(event.EnemyReachedEnd, r),
		)
	}
	return r, nil
}

// Get возвращает пул по ID.
func (r *Registry) Get(id defs.PoolID) (*EnemyPool, bool) {
	p, ok := r.pools[id]
	return p, ok
}

// OnEvent возвращает убитого или дошедшего до конца врага в его пул.
func (r *Registry) OnEvent(e event.Event) {
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	var poolID defs.PoolID
	found := false
	r.ecs.WithLock(func() {
		if enemy, ok := r.ecs.Enemies[id]; ok {
			poolID, found = enemy.PoolID, true
		}
	})
	if !found {
		return
	}
	if p, ok := r.pools[poolID]; ok {
		p.Release(id)
	}
}

// ReleaseActive снимает с поля всех активных врагов и возвращает их в пулы
// без событий EnemyKilled/EnemyReachedEnd. Возвращает число снятых врагов.
func (r *Registry) ReleaseActive() int {
	type owned struct {
		id   types.EntityID
		pool defs.PoolID
	}
	var active []owned
	r.ecs.WithLock(func() {
		for id, enemy := range r.ecs.Enemies {
			if enemy.Active {
				active = append(active, owned{id: id, pool: enemy.PoolID})
			}
		}
	})

	n := 0
	for _, a := range active {
		if p, ok := r.pools[a.pool]; ok {
			p.Release(a.id)
			n++
			continue
		}
		// Чужой пул: просто убираем с поля
		r.ecs.WithLock(func() {
			r.ecs.Enemies[a.id].Active = false
		})
		n++
	}
	return n
}

// Close снимает подписки.
func (r *Registry) Close() {
	for _, sub := range r.subs {
		sub.Release()
	}
	r.subs = nil
}
