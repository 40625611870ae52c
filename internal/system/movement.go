// internal/system/movement.go
package system

import (
	"go-wave-spawner/internal/entity"
	"go-wave-spawner/internal/event"
	"go-wave-spawner/internal/types"
	"go-wave-spawner/internal/utils"
)

// MovementSystem ведёт активных врагов по точкам маршрута
type MovementSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var finished []types.EntityID
	for _, id := range s.ecs.ActiveEnemies() {
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasPath {
			continue
		}

		moveDistance := 0.0
		if vel, hasVel := s.ecs.Velocities[id]; hasVel {
			moveDistance = vel.Speed * deltaTime
		}

		// Остаток хода переносится на следующую точку
		for !path.Done() {
			target := path.Points[path.CurrentIndex]
			before := utils.Distance(pos.X, pos.Y, target.X, target.Y)
			var reached bool
			pos.X, pos.Y, reached = utils.MoveTowards(pos.X, pos.Y, target.X, target.Y, moveDistance)
			if !reached {
				break
			}
			moveDistance -= before
			path.CurrentIndex++
			if moveDistance <= 0 {
				break
			}
		}

		if path.Done() {
			finished = append(finished, id)
		}
	}

	for _, id := range finished {
		enemy := s.ecs.Enemies[id]
		enemy.ReachedEnd = true
		enemy.Active = false
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})
	}
}
