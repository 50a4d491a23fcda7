// Package input carries pointer, focus and keyboard events from the window to
// the listeners that react to them. Dispatch is synchronous and runs on the
// update goroutine.
package input

// Kind identifies an event type.
type Kind int

const (
	PointerMove Kind = iota
	Click
	Enter
	Leave
	Focus
	Blur
	TextInput
	KeyPress
)

var kindNames = [...]string{"pointermove", "click", "enter", "leave", "focus", "blur", "input", "keypress"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is a single input occurrence. Target is the id of the element under
// the pointer or holding focus, empty for the background.
type Event struct {
	Kind   Kind
	X, Y   float64
	Target string
	Key    string
	Rune   rune
}

// Handler reacts to an event. Handlers never block.
type Handler func(Event)

// Dispatcher fans events out to registered handlers in registration order.
type Dispatcher struct {
	handlers map[Kind][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[Kind][]Handler{}}
}

// On registers h for events of kind k.
func (d *Dispatcher) On(k Kind, h Handler) {
	d.handlers[k] = append(d.handlers[k], h)
}

// Dispatch delivers e to every handler registered for its kind.
func (d *Dispatcher) Dispatch(e Event) {
	for _, h := range d.handlers[e.Kind] {
		h(e)
	}
}

// Listeners reports how many handlers are registered for k.
func (d *Dispatcher) Listeners(k Kind) int {
	return len(d.handlers[k])
}

// Total reports the number of handlers across all kinds.
func (d *Dispatcher) Total() int {
	n := 0
	for _, hs := range d.handlers {
		n += len(hs)
	}
	return n
}
