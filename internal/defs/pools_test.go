package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPoolBindingsSelect(t *testing.T) {
	wantByRange := []struct {
		from, to int
		pool     PoolID
	}{
		{1, 10, "wave_1_10"},
		{11, 20, "wave_11_20"},
		{21, 30, "wave_21_30"},
		{31, 40, "wave_31_40"},
		{41, 50, "wave_41_50"},
	}
	for _, r := range wantByRange {
		for wave := r.from; wave <= r.to; wave++ {
			got, ok := DefaultPoolBindings.Select(wave)
			if !ok {
				t.Fatalf("wave %d: no pool", wave)
			}
			if got != r.pool {
				t.Errorf("wave %d: got %s, want %s", wave, got, r.pool)
			}
		}
	}
}

func TestDefaultPoolBindingsExactlyOneMatch(t *testing.T) {
	for wave := 1; wave <= 50; wave++ {
		matches := 0
		for _, b := range DefaultPoolBindings {
			if b.Waves.Contains(wave) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("wave %d matched %d bindings", wave, matches)
		}
	}
}

func TestDefaultPoolBindingsOutOfRange(t *testing.T) {
	for _, wave := range []int{-5, -1, 0, 51, 52, 100} {
		if got, ok := DefaultPoolBindings.Select(wave); ok {
			t.Errorf("wave %d: expected no pool, got %s", wave, got)
		}
	}
}

func TestSelectScenario(t *testing.T) {
	if got, _ := DefaultPoolBindings.Select(25); got != "wave_21_30" {
		t.Errorf("wave 25: got %s, want wave_21_30", got)
	}
	if _, ok := DefaultPoolBindings.Select(51); ok {
		t.Error("wave 51: expected no binding")
	}
}

func TestPoolBindingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		bindings PoolBindings
		wantErr  string
	}{
		{name: "defaults", bindings: DefaultPoolBindings},
		{name: "empty", bindings: PoolBindings{}},
		{
			name: "overlap",
			bindings: PoolBindings{
				{Waves: WaveRange{From: 1, To: 10}, Pool: "a"},
				{Waves: WaveRange{From: 10, To: 20}, Pool: "b"},
			},
			wantErr: "overlaps",
		},
		{
			name:     "inverted range",
			bindings: PoolBindings{{Waves: WaveRange{From: 5, To: 1}, Pool: "a"}},
			wantErr:  "invalid wave range",
		},
		{
			name:     "zero start",
			bindings: PoolBindings{{Waves: WaveRange{From: 0, To: 3}, Pool: "a"}},
			wantErr:  "invalid wave range",
		},
		{
			name:     "empty pool id",
			bindings: PoolBindings{{Waves: WaveRange{From: 1, To: 3}}},
			wantErr:  "empty pool id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bindings.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBindingsFromSortsByRange(t *testing.T) {
	bindings, err := BindingsFrom([]PoolDefinition{
		{ID: "late", Waves: WaveRange{From: 60, To: 80}},
		{ID: "early", Waves: WaveRange{From: 1, To: 59}},
	})
	if err != nil {
		t.Fatalf("BindingsFrom() error: %v", err)
	}
	if bindings[0].Pool != "early" || bindings[1].Pool != "late" {
		t.Errorf("unexpected order: %+v", bindings)
	}
	if got, _ := bindings.Select(70); got != "late" {
		t.Errorf("wave 70: got %s, want late", got)
	}
}

func TestNoPoolBoundError(t *testing.T) {
	var err error = &NoPoolBoundError{Wave: 51}
	var target *NoPoolBoundError
	if !errors.As(err, &target) || target.Wave != 51 {
		t.Fatalf("errors.As failed: %v", err)
	}
	if !strings.Contains(err.Error(), "51") {
		t.Errorf("message should mention the wave: %q", err.Error())
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadDefinitions(t *testing.T) {
	dir := t.TempDir()
	enemies := writeFile(t, dir, "enemies.yaml", `
- id: GRUNT
  name: Grunt
  health: 100
  speed: 50
  visuals: {color: [10, 20, 30, 255], radius_factor: 1.0}
- id: BRUTE
  name: Brute
  health: 300
  speed: 30
`)
	pools := writeFile(t, dir, "pools.yaml", `
- id: late
  waves: {from: 11, to: 20}
  capacity: 2
  enemies: [{enemy: BRUTE, weight: 1}]
- id: early
  waves: {from: 1, to: 10}
  capacity: 4
  enemies: [{enemy: GRUNT, weight: 2}, {enemy: BRUTE, weight: 1}]
`)

	if err := LoadEnemyDefinitions(enemies); err != nil {
		t.Fatalf("LoadEnemyDefinitions() error: %v", err)
	}
	if got := EnemyLibrary["GRUNT"].Visuals.Color.Color(); got.R != 10 || got.A != 255 {
		t.Errorf("unexpected color: %+v", got)
	}

	bindings, err := LoadPoolDefinitions(pools)
	if err != nil {
		t.Fatalf("LoadPoolDefinitions() error: %v", err)
	}
	if len(bindings) != 2 || bindings[0].Pool != "early" {
		t.Errorf("unexpected bindings: %+v", bindings)
	}
	if PoolLibrary["early"].Capacity != 4 {
		t.Errorf("early capacity: got %d, want 4", PoolLibrary["early"].Capacity)
	}
}

func TestLoadPoolDefinitionsErrors(t *testing.T) {
	EnemyLibrary = map[string]EnemyDefinition{"GRUNT": {ID: "GRUNT", Health: 10}}
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown enemy",
			content: `[{id: a, waves: {from: 1, to: 5}, enemies: [{enemy: GHOST, weight: 1}]}]`,
			wantErr: "unknown enemy",
		},
		{
			name:    "no enemies",
			content: `[{id: a, waves: {from: 1, to: 5}}]`,
			wantErr: "no enemies",
		},
		{
			name: "overlap",
			content: `[{id: a, waves: {from: 1, to: 5}, enemies: [{enemy: GRUNT, weight: 1}]},
{id: b, waves: {from: 5, to: 9}, enemies: [{enemy: GRUNT, weight: 1}]}]`,
			wantErr: "overlaps",
		},
		{
			name:    "bad yaml",
			content: `{{{`,
			wantErr: "failed to unmarshal",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "pools.yaml", tt.content)
			_, err := LoadPoolDefinitions(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadEnemyDefinitionsMissingFile(t *testing.T) {
	err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Fatalf("expected read error, got %v", err)
	}
}
