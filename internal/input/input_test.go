package input

import "testing"

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.On(Click, func(e Event) { got = append(got, "a:"+e.Target) })
	d.On(Click, func(e Event) { got = append(got, "b:"+e.Target) })
	d.On(PointerMove, func(Event) { got = append(got, "move") })

	d.Dispatch(Event{Kind: Click, Target: "login"})

	if len(got) != 2 || got[0] != "a:login" || got[1] != "b:login" {
		t.Fatalf("unexpected dispatch order: %v", got)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Kind: Focus})
	if d.Total() != 0 {
		t.Fatalf("Total: got %d, want 0", d.Total())
	}
}

func TestListeners(t *testing.T) {
	d := NewDispatcher()
	d.On(Enter, func(Event) {})
	d.On(Enter, func(Event) {})
	d.On(Leave, func(Event) {})

	if n := d.Listeners(Enter); n != 2 {
		t.Errorf("Listeners(Enter): got %d, want 2", n)
	}
	if n := d.Total(); n != 3 {
		t.Errorf("Total: got %d, want 3", n)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{PointerMove, "pointermove"},
		{Click, "click"},
		{KeyPress, "keypress"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
