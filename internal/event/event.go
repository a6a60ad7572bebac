// internal/event/event.go
package event

// EventType — тип события симуляции
type EventType string

// Event is delivered synchronously on the simulation thread.
// Data carries one of the payload types from types.go.
type Event struct {
	Type EventType
	Time float64 // game time at dispatch
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Dispatch delivers the event to type subscribers first, then to catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}
