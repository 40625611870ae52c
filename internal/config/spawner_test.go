package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSpawnConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, SpawnConfig)
	}{
		{
			name: "fixed mode",
			yamlContent: `
spawnMode: fixed
enemyCount: 3
delayBtwWaves: 2
delayBtwSpawns: 1
`,
			validate: func(t *testing.T, cfg SpawnConfig) {
				if cfg.SpawnMode != SpawnFixed {
					t.Errorf("expected fixed mode, got %s", cfg.SpawnMode)
				}
				if cfg.EnemyCount != 3 || cfg.DelayBtwWaves != 2 || cfg.DelayBtwSpawns != 1 {
					t.Errorf("unexpected values: %+v", cfg)
				}
			},
		},
		{
			name: "random mode",
			yamlContent: `
spawnMode: Random
enemyCount: 5
minRandomDelay: 0.5
maxRandomDelay: 1.5
`,
			validate: func(t *testing.T, cfg SpawnConfig) {
				if cfg.SpawnMode != SpawnRandom {
					t.Errorf("expected random mode, got %s", cfg.SpawnMode)
				}
				if cfg.MinRandomDelay != 0.5 || cfg.MaxRandomDelay != 1.5 {
					t.Errorf("unexpected bounds: %+v", cfg)
				}
			},
		},
		{
			name:        "defaults fill missing fields",
			yamlContent: `delayBtwSpawns: 0.25`,
			validate: func(t *testing.T, cfg SpawnConfig) {
				if cfg.EnemyCount != DefaultEnemyCount {
					t.Errorf("expected default enemy count %d, got %d", DefaultEnemyCount, cfg.EnemyCount)
				}
				if cfg.DelayBtwWaves != DefaultDelayBtwWaves {
					t.Errorf("expected default delay %g, got %g", DefaultDelayBtwWaves, cfg.DelayBtwWaves)
				}
			},
		},
		{
			name:        "zero enemies",
			yamlContent: `enemyCount: 0`,
			wantErr:     true,
			errContains: "enemyCount",
		},
		{
			name:        "negative wave delay",
			yamlContent: `delayBtwWaves: -1`,
			wantErr:     true,
			errContains: "delayBtwWaves",
		},
		{
			name:        "negative spawn delay",
			yamlContent: `delayBtwSpawns: -0.1`,
			wantErr:     true,
			errContains: "delayBtwSpawns",
		},
		{
			name: "min above max",
			yamlContent: `
spawnMode: random
minRandomDelay: 2
maxRandomDelay: 1
`,
			wantErr:     true,
			errContains: "invalid range",
		},
		{
			name:        "unknown mode",
			yamlContent: `spawnMode: burst`,
			wantErr:     true,
			errContains: "burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSpawnConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidateInvalidRangeError(t *testing.T) {
	cfg := SpawnConfig{SpawnMode: SpawnRandom, EnemyCount: 1, MinRandomDelay: 3, MaxRandomDelay: 1}
	err := cfg.Validate()

	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
	if rangeErr.Min != 3 || rangeErr.Max != 1 {
		t.Errorf("unexpected bounds in error: %+v", rangeErr)
	}
}

func TestValidateIgnoresUnusedModeFields(t *testing.T) {
	// В фиксированном режиме случайные границы не используются
	cfg := SpawnConfig{SpawnMode: SpawnFixed, EnemyCount: 1, MinRandomDelay: 5, MaxRandomDelay: 1}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSpawnConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spawner.yaml")
	if err := os.WriteFile(path, []byte("enemyCount: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSpawnConfig(path)
	if err != nil {
		t.Fatalf("LoadSpawnConfig() error: %v", err)
	}
	if cfg.EnemyCount != 7 {
		t.Errorf("enemyCount: got %d, want 7", cfg.EnemyCount)
	}

	if _, err := LoadSpawnConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultSpawnConfigIsValid(t *testing.T) {
	if err := DefaultSpawnConfig().Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}
