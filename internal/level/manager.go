// Package level отвечает за номер текущей волны.
package level

import (
	"go-wave-spawner/internal/event"
	"log"
)

// Manager — источник номера текущей волны. Волна увеличивается на каждое
// WaveCompleted; сам спавнер номер волны не хранит.
type Manager struct {
	currentWave int
	store       *ProgressStore
	sub         *event.Subscription
}

// NewManager начинает с волны startWave (минимум 1).
func NewManager(dispatcher *event.Dispatcher, store *ProgressStore, startWave int) *Manager {
	if startWave < 1 {
		startWave = 1
	}
	m := &Manager{currentWave: startWave, store: store}
	if dispatcher != nil {
		m.sub = dispatcher.Subscribe(event.WaveCompleted, m)
	}
	return m
}

func (m *Manager) CurrentWave() int {
	return m.currentWave
}

// SetWave принудительно задаёт номер волны.
func (m *Manager) SetWave(wave int) {
	m.currentWave = wave
}

// BestWave — рекорд из хранилища (0, если хранилища нет).
func (m *Manager) BestWave() int {
	if m.store == nil {
		return 0
	}
	return m.store.BestWave()
}

func (m *Manager) OnEvent(e event.Event) {
	if e.Type != event.WaveCompleted {
		return
	}
	cleared := m.currentWave
	m.currentWave++
	log.Printf("[Level] Wave %d cleared, next wave %d", cleared, m.currentWave)

	if m.store != nil && m.store.RecordWave(cleared) {
		if err := m.store.Save(); err != nil {
			log.Printf("[Level] Warning: %v", err)
		}
	}
}

// Close снимает подписку на события.
func (m *Manager) Close() {
	m.sub.Release()
	m.sub = nil
}
