package fx

// Queue is a fixed-capacity ring of records kept in insertion order. Pushing
// onto a full queue overwrites the oldest record.
type Queue[T any] struct {
	buf  []T
	next int
	n    int
}

func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Push appends v and reports whether the oldest record was evicted to make room.
func (q *Queue[T]) Push(v T) bool {
	q.buf[q.next] = v
	q.next++
	if q.next >= len(q.buf) {
		q.next = 0
	}
	if q.n < len(q.buf) {
		q.n++
		return false
	}
	return true
}

func (q *Queue[T]) Len() int { return q.n }
func (q *Queue[T]) Cap() int { return len(q.buf) }

func (q *Queue[T]) start() int {
	s := q.next - q.n
	if s < 0 {
		s += len(q.buf)
	}
	return s
}

// At returns the i-th oldest record for in-place mutation.
func (q *Queue[T]) At(i int) *T {
	return &q.buf[(q.start()+i)%len(q.buf)]
}

// Each visits records oldest first.
func (q *Queue[T]) Each(fn func(*T)) {
	s := q.start()
	for i := 0; i < q.n; i++ {
		fn(&q.buf[(s+i)%len(q.buf)])
	}
}

// Retain drops every record for which keep returns false, preserving order.
func (q *Queue[T]) Retain(keep func(*T) bool) {
	s := q.start()
	w := 0
	for i := 0; i < q.n; i++ {
		src := &q.buf[(s+i)%len(q.buf)]
		if !keep(src) {
			continue
		}
		if w != i {
			q.buf[(s+w)%len(q.buf)] = *src
		}
		w++
	}
	var zero T
	for j := w; j < q.n; j++ {
		q.buf[(s+j)%len(q.buf)] = zero
	}
	q.n = w
	q.next = (s + w) % len(q.buf)
}

// Snapshot copies the records out, oldest first.
func (q *Queue[T]) Snapshot() []T {
	out := make([]T, 0, q.n)
	q.Each(func(v *T) { out = append(out, *v) })
	return out
}

func (q *Queue[T]) Clear() {
	q.Retain(func(*T) bool { return false })
}
