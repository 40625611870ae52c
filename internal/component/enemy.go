package component

import "go-wave-spawner/internal/defs"

// Enemy представляет вражескую сущность, выданную из пула.
type Enemy struct {
	DefID      string      // ID из enemies.yaml
	PoolID     defs.PoolID // Пул, в который враг вернётся после гибели
	Active     bool        // Враг на поле; неактивные лежат в пуле
	ReachedEnd bool        // Достиг ли враг конца пути
}
