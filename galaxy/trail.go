package galaxy

import "github.com/lixenwraith/galaxy-gallery/vmath"

// Trail is a bounded FIFO of recent positions, oldest first
// Backed by a ring buffer so pushes never allocate once full
type Trail struct {
	buf  []vmath.Vec2
	head int // index of the oldest point
	size int
}

// NewTrail creates a trail holding at most capacity points
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]vmath.Vec2, capacity)}
}

// Push appends p, evicting the oldest point when full
func (t *Trail) Push(p vmath.Vec2) {
	c := len(t.buf)
	if t.size < c {
		t.buf[(t.head+t.size)%c] = p
		t.size++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % c
}

// Len returns the number of stored points
func (t *Trail) Len() int { return t.size }

// Cap returns the maximum number of points
func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th point, 0 being the oldest
func (t *Trail) At(i int) vmath.Vec2 {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Newest returns the most recent point
func (t *Trail) Newest() (vmath.Vec2, bool) {
	if t.size == 0 {
		return vmath.Vec2{}, false
	}
	return t.At(t.size - 1), true
}

// ShiftNewest translates the most recent point by d, if any
func (t *Trail) ShiftNewest(d vmath.Vec2) {
	if t.size == 0 {
		return
	}
	i := (t.head + t.size - 1) % len(t.buf)
	t.buf[i] = vmath.V2Add(t.buf[i], d)
}
