package defs

import (
	"fmt"
	"sort"
)

// PoolID — идентификатор пула врагов.
type PoolID string

// WaveRange — отрезок номеров волн, включительно с обоих концов.
type WaveRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Contains сообщает, попадает ли волна в отрезок.
func (r WaveRange) Contains(wave int) bool {
	return wave >= r.From && wave <= r.To
}

func (r WaveRange) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// PoolEntry — вес одного типа врага внутри пула.
type PoolEntry struct {
	EnemyID string `yaml:"enemy"`
	Weight  int    `yaml:"weight"`
}

// PoolDefinition описывает пул: какие волны он обслуживает и кем наполняется.
type PoolDefinition struct {
	ID       PoolID      `yaml:"id"`
	Waves    WaveRange   `yaml:"waves"`
	Capacity int         `yaml:"capacity"`
	Enemies  []PoolEntry `yaml:"enemies"`
}

// PoolBinding связывает отрезок волн с пулом.
type PoolBinding struct {
	Waves WaveRange
	Pool  PoolID
}

// PoolBindings — упорядоченная по возрастанию таблица привязок.
type PoolBindings []PoolBinding

// NoPoolBoundError — для волны нет ни одной привязки.
type NoPoolBoundError struct {
	Wave int
}

func (e *NoPoolBoundError) Error() string {
	return fmt.Sprintf("no enemy pool bound to wave %d", e.Wave)
}

// DefaultPoolBindings — пять диапазонов по десять волн.
var DefaultPoolBindings = PoolBindings{
	{Waves: WaveRange{From: 1, To: 10}, Pool: "wave_1_10"},
	{Waves: WaveRange{From: 11, To: 20}, Pool: "wave_11_20"},
	{Waves: WaveRange{From: 21, To: 30}, Pool: "wave_21_30"},
	{Waves: WaveRange{From: 31, To: 40}, Pool: "wave_31_40"},
	{Waves: WaveRange{From: 41, To: 50}, Pool: "wave_41_50"},
}

// Select возвращает первый пул, чей диапазон содержит волну.
func (b PoolBindings) Select(wave int) (PoolID, bool) {
	for _, binding := range b {
		if binding.Waves.Contains(wave) {
			return binding.Pool, true
		}
	}
	return "", false
}

// Validate проверяет, что диапазоны корректны, отсортированы и не пересекаются.
func (b PoolBindings) Validate() error {
	for i, binding := range b {
		if binding.Pool == "" {
			return fmt.Errorf("binding %d: empty pool id", i)
		}
		if binding.Waves.From < 1 || binding.Waves.From > binding.Waves.To {
			return fmt.Errorf("binding %s: invalid wave range %s", binding.Pool, binding.Waves)
		}
		if i > 0 && binding.Waves.From <= b[i-1].Waves.To {
			return fmt.Errorf("binding %s: range %s overlaps or precedes %s", binding.Pool, binding.Waves, b[i-1].Waves)
		}
	}
	return nil
}

// BindingsFrom строит таблицу привязок из определений пулов, сортируя по началу диапазона.
func BindingsFrom(pools []PoolDefinition) (PoolBindings, error) {
	bindings := make(PoolBindings, 0, len(pools))
	for _, p := range pools {
		bindings = append(bindings, PoolBinding{Waves: p.Waves, Pool: p.ID})
	}
	sort.SliceStable(bindings, func(i, j int) bool {
		return bindings[i].Waves.From < bindings[j].Waves.From
	})
	if err := bindings.Validate(); err != nil {
		return nil, err
	}
	return bindings, nil
}
