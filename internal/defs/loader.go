package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// PoolLibrary is a map to hold all pool definitions, keyed by their ID.
var PoolLibrary map[PoolID]PoolDefinition

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition without id")
		}
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be > 0, got %d", def.ID, def.Health)
		}
		library[def.ID] = def
	}
	EnemyLibrary = library

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// LoadPoolDefinitions reads the pool configuration file, populates the PoolLibrary
// and returns the wave bindings sorted by range.
func LoadPoolDefinitions(path string) (PoolBindings, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool definitions file: %w", err)
	}

	var poolDefs []PoolDefinition
	if err := yaml.Unmarshal(file, &poolDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pool definitions: %w", err)
	}

	library := make(map[PoolID]PoolDefinition, len(poolDefs))
	for _, def := range poolDefs {
		if len(def.Enemies) == 0 {
			return nil, fmt.Errorf("pool %s: no enemies", def.ID)
		}
		for _, entry := range def.Enemies {
			if _, ok := EnemyLibrary[entry.EnemyID]; !ok {
				return nil, fmt.Errorf("pool %s: unknown enemy %q", def.ID, entry.EnemyID)
			}
		}
		if _, dup := library[def.ID]; dup {
			return nil, fmt.Errorf("pool %s: duplicate id", def.ID)
		}
		library[def.ID] = def
	}

	bindings, err := BindingsFrom(poolDefs)
	if err != nil {
		return nil, fmt.Errorf("invalid pool bindings: %w", err)
	}
	PoolLibrary = library

	log.Printf("Loaded %d pool definitions", len(PoolLibrary))
	return bindings, nil
}
