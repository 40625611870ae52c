// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MoveTowards сдвигает точку к цели не более чем на step.
// Возвращает новую позицию и признак того, что цель достигнута.
func MoveTowards(x, y, tx, ty, step float64) (float64, float64, bool) {
	dist := Distance(x, y, tx, ty)
	if dist <= step || dist == 0 {
		return tx, ty, true
	}
	t := step / dist
	return Lerp(x, tx, t), Lerp(y, ty, t), false
}
