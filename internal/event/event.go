// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий. Работает в одном логическом потоке.
type Dispatcher struct {
	listeners map[EventType][]*Subscription
}

// Subscription — результат подписки. Release отписывает слушателя.
type Subscription struct {
	dispatcher *Dispatcher
	eventType  EventType
	listener   Listener
	released   bool
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]*Subscription),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) *Subscription {
	sub := &Subscription{dispatcher: d, eventType: eventType, listener: listener}
	d.listeners[eventType] = append(d.listeners[eventType], sub)
	return sub
}

// Unsubscribe — отписка от события (первое совпадение слушателя).
// Слушатель должен быть сравнимым; ListenerFunc отписывается только через Release.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	for _, sub := range d.listeners[eventType] {
		if sub.listener == listener {
			sub.Release()
			return
		}
	}
}

// Release снимает подписку. Повторный вызов ничего не делает.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	d := s.dispatcher
	current := d.listeners[s.eventType]
	// Новый срез, чтобы не портить тот, по которому сейчас идёт Dispatch
	next := make([]*Subscription, 0, len(current))
	for _, sub := range current {
		if sub != s {
			next = append(next, sub)
		}
	}
	if len(next) == 0 {
		delete(d.listeners, s.eventType)
		return
	}
	d.listeners[s.eventType] = next
}

// ListenerCount — число активных подписчиков на тип события
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, sub := range d.listeners[event.Type] {
		if sub.released {
			continue
		}
		sub.listener.OnEvent(event)
	}
}
