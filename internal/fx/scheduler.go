package fx

// Scheduler queues next-frame callbacks, the way a display refresh does.
// A callback runs once; to keep running it must request the next frame itself.
type Scheduler struct {
	pending []func()
	ticks   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame queues cb for the next Tick.
func (s *Scheduler) RequestFrame(cb func()) {
	s.pending = append(s.pending, cb)
}

// Tick runs the callbacks queued before the call. Callbacks requested while
// ticking wait for the following Tick.
func (s *Scheduler) Tick() {
	run := s.pending
	s.pending = nil
	for _, cb := range run {
		cb()
	}
	s.ticks++
}

// Pending is the number of callbacks waiting for the next Tick.
func (s *Scheduler) Pending() int { return len(s.pending) }

func (s *Scheduler) Ticks() uint64 { return s.ticks }
