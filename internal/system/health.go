package system

import (
	"go-wave-spawner/internal/entity"
	"go-wave-spawner/internal/event"
	"go-wave-spawner/internal/types"
	"go-wave-spawner/internal/utils"
)

// HealthSystem наносит урон врагам и объявляет убитых
type HealthSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewHealthSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *HealthSystem {
	return &HealthSystem{ecs: ecs, dispatcher: dispatcher}
}

// ApplyDamage уменьшает здоровье врага. Возвращает true, если враг погиб.
func (s *HealthSystem) ApplyDamage(id types.EntityID, damage int) bool {
	if !s.ecs.IsActiveEnemy(id) || damage <= 0 {
		return false
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}
	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	health.Value = 0
	s.ecs.Enemies[id].Active = false
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	return true
}

// EnemyAt возвращает ближайшего активного врага в радиусе от точки.
func (s *HealthSystem) EnemyAt(x, y, radius float64) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := radius
	found := false
	for _, id := range s.ecs.ActiveEnemies() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if d := utils.Distance(x, y, pos.X, pos.Y); d <= bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}
