package level

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Progress — сохраняемый прогресс игрока
type Progress struct {
	BestWave int `yaml:"bestWave"`
}

// ProgressStore сохраняет прогресс через gdata.
// При nil-менеджере работает только в памяти.
type ProgressStore struct {
	gdataManager *gdata.Manager
	progress     Progress
}

const (
	progressObject   = "progress"
	progressProperty = "waves"
)

// NewProgressStore создаёт хранилище и пытается загрузить сохранённый прогресс.
func NewProgressStore(gdataManager *gdata.Manager) *ProgressStore {
	s := &ProgressStore{gdataManager: gdataManager}
	if err := s.Load(); err != nil {
		log.Printf("[Level] Warning: failed to load progress: %v (starting fresh)", err)
	}
	return s
}

// Load читает прогресс. Отсутствие сохранения — не ошибка.
func (s *ProgressStore) Load() error {
	s.progress = Progress{}
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded Progress
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	s.progress = loaded
	return nil
}

// Save записывает прогресс.
func (s *ProgressStore) Save() error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// BestWave — лучшая достигнутая волна
func (s *ProgressStore) BestWave() int {
	return s.progress.BestWave
}

// RecordWave обновляет рекорд. Возвращает true, если рекорд побит.
func (s *ProgressStore) RecordWave(wave int) bool {
	if wave <= s.progress.BestWave {
		return false
	}
	s.progress.BestWave = wave
	return true
}
