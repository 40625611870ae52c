// component/movement.go
package component

// Point — точка на экране
type Point struct {
	X, Y float64
}

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// Path — компонент пути (точки маршрута от спавнера до выхода)
type Path struct {
	Points       []Point
	CurrentIndex int
}

// Done — враг прошёл все точки маршрута
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Points)
}
