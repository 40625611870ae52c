package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpawnMode — способ расчёта задержки между спавнами
type SpawnMode int

const (
	SpawnFixed SpawnMode = iota
	SpawnRandom
)

func (m SpawnMode) String() string {
	switch m {
	case SpawnFixed:
		return "fixed"
	case SpawnRandom:
		return "random"
	default:
		return fmt.Sprintf("SpawnMode(%d)", int(m))
	}
}

// UnmarshalYAML разбирает режим из строки ("fixed" / "random").
func (m *SpawnMode) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fixed", "":
		*m = SpawnFixed
	case "random":
		*m = SpawnRandom
	default:
		return &ValidationError{Field: "spawnMode", Reason: fmt.Sprintf("unknown mode %q", raw)}
	}
	return nil
}

// MarshalYAML записывает режим строкой.
func (m SpawnMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// SpawnConfig — настройки спавнера. Задаются один раз при создании.
// Все задержки в секундах.
type SpawnConfig struct {
	SpawnMode      SpawnMode `yaml:"spawnMode"`
	EnemyCount     int       `yaml:"enemyCount"`
	DelayBtwWaves  float64   `yaml:"delayBtwWaves"`
	DelayBtwSpawns float64   `yaml:"delayBtwSpawns"` // только для SpawnFixed
	MinRandomDelay float64   `yaml:"minRandomDelay"` // только для SpawnRandom
	MaxRandomDelay float64   `yaml:"maxRandomDelay"`
}

// DefaultSpawnConfig возвращает настройки по умолчанию.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		SpawnMode:     SpawnFixed,
		EnemyCount:    DefaultEnemyCount,
		DelayBtwWaves: DefaultDelayBtwWaves,
	}
}

// ValidationError — некорректное значение поля конфигурации.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// InvalidRangeError — границы случайной задержки заданы неверно (min > max или min < 0).
type InvalidRangeError struct {
	Field    string
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: invalid range [%g, %g]", e.Field, e.Min, e.Max)
}

// Validate проверяет инварианты конфигурации.
func (c SpawnConfig) Validate() error {
	if c.EnemyCount <= 0 {
		return &ValidationError{Field: "enemyCount", Reason: fmt.Sprintf("must be > 0, got %d", c.EnemyCount)}
	}
	if c.DelayBtwWaves < 0 {
		return &ValidationError{Field: "delayBtwWaves", Reason: fmt.Sprintf("must be >= 0, got %g", c.DelayBtwWaves)}
	}
	switch c.SpawnMode {
	case SpawnFixed:
		if c.DelayBtwSpawns < 0 {
			return &ValidationError{Field: "delayBtwSpawns", Reason: fmt.Sprintf("must be >= 0, got %g", c.DelayBtwSpawns)}
		}
	case SpawnRandom:
		if c.MinRandomDelay < 0 || c.MinRandomDelay > c.MaxRandomDelay {
			return &InvalidRangeError{Field: "randomDelay", Min: c.MinRandomDelay, Max: c.MaxRandomDelay}
		}
	default:
		return &ValidationError{Field: "spawnMode", Reason: c.SpawnMode.String()}
	}
	return nil
}

// LoadSpawnConfig читает настройки спавнера из YAML-файла.
// Отсутствующие поля берутся из DefaultSpawnConfig.
func LoadSpawnConfig(path string) (SpawnConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpawnConfig{}, fmt.Errorf("failed to read spawn config file: %w", err)
	}
	return ParseSpawnConfig(data)
}

// ParseSpawnConfig разбирает YAML и валидирует результат.
func ParseSpawnConfig(data []byte) (SpawnConfig, error) {
	cfg := DefaultSpawnConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpawnConfig{}, fmt.Errorf("failed to parse spawn config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SpawnConfig{}, fmt.Errorf("invalid spawn config: %w", err)
	}
	return cfg, nil
}
