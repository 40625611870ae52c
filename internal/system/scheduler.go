// internal/system/scheduler.go
package system

import "sort"

// Timer — отложенный вызов в Scheduler
type Timer struct {
	remaining float64
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel отменяет вызов. Возвращает false, если вызов уже состоялся или отменён.
func (t *Timer) Cancel() bool {
	if t == nil || t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	return true
}

// Pending — вызов ещё впереди
func (t *Timer) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Scheduler — очередь отложенных вызовов, которую продвигает игровой цикл.
// Все вызовы выполняются внутри Update, в том же потоке.
type Scheduler struct {
	timers []*Timer
	seq    uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After ставит fn на выполнение через delay секунд игрового времени.
// Таймер с delay <= 0 сработает на ближайшем Update.
func (s *Scheduler) After(delay float64, fn func()) *Timer {
	s.seq++
	t := &Timer{remaining: delay, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Update продвигает время на deltaTime и выполняет наступившие вызовы
// в порядке их срока, при равенстве — в порядке постановки.
// Таймеры, поставленные из сработавших вызовов, ждут следующего Update.
func (s *Scheduler) Update(deltaTime float64) {
	if len(s.timers) == 0 {
		return
	}

	// keep пишет в тот же массив, что и s.timers. Вызывать fn можно только
	// после присваивания s.timers = keep: иначе After из fn допишет таймер
	// в хвост, который сейчас перезаписывается.
	var due []*Timer
	keep := s.timers[:0]
	for _, t := range s.timers {
		if t.cancelled {
			continue
		}
		t.remaining -= deltaTime
		if t.remaining <= 0 {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	for i := len(keep); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = keep

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].remaining != due[j].remaining {
			return due[i].remaining < due[j].remaining
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// Pending — число ожидающих таймеров
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Clear отменяет все ожидающие вызовы.
func (s *Scheduler) Clear() {
	for _, t := range s.timers {
		t.Cancel()
	}
	s.timers = nil
}
