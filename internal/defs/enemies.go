package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Health  int     `yaml:"health"`
	Speed   float64 `yaml:"speed"`
	Visuals Visuals `yaml:"visuals"`
}

// Visuals — параметры отрисовки врага.
type Visuals struct {
	Color        RGBA    `yaml:"color"`
	RadiusFactor float64 `yaml:"radius_factor"`
	StrokeWidth  float64 `yaml:"stroke_width"`
}

// RGBA — цвет в виде [r, g, b, a] в YAML.
type RGBA [4]uint8

func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary map[string]EnemyDefinition
