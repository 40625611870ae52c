// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Значения по умолчанию для спавнера
	DefaultEnemyCount    = 10
	DefaultDelayBtwWaves = 1.0

	EnemyRadius        = 10.0
	EnemyStrokeWidth   = 2.0
	ClickDamage        = 50
	ClickRadius        = 14.0
	WaveIndicatorY     = 20
	WaveIndicatorScale = 3.0
	PathLineWidth      = 3.0
	WaypointRadius     = 6.0
	ProgressAppName    = "go_wave_spawner"
	SpawnConfigPath    = "assets/data/spawner.yaml"
	EnemyDefsPath      = "assets/data/enemies.yaml"
	PoolBindingsPath   = "assets/data/pools.yaml"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	EnemyStrokeColor = color.RGBA{255, 255, 255, 255}
	WaveTextColor    = color.RGBA{70, 130, 180, 255}
	BossWaveColor    = color.RGBA{220, 60, 60, 255}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
)
