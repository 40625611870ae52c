// internal/system/render.go
package system

import (
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует маршрут и активных врагов
type RenderSystem struct {
	ecs   *entity.ECS
	route Route
}

func NewRenderSystem(ecs *entity.ECS, route Route) *RenderSystem {
	return &RenderSystem{ecs: ecs, route: route}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	// Сначала маршрут
	prev := s.route.Origin
	for _, p := range s.route.Points {
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), config.PathLineWidth, config.PathColor, true)
		prev = p
	}
	vector.DrawFilledCircle(screen, float32(s.route.Origin.X), float32(s.route.Origin.Y), config.WaypointRadius, config.EntryColor, true)
	if n := len(s.route.Points); n > 0 {
		exit := s.route.Points[n-1]
		vector.DrawFilledCircle(screen, float32(exit.X), float32(exit.Y), config.WaypointRadius, config.ExitColor, true)
	}

	// Затем враги
	for _, id := range s.ecs.ActiveEnemies() {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		if render.HasStroke {
			strokeRadius := render.Radius + config.EnemyStrokeWidth
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.EnemyStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
	}
}
