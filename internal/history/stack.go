// Package history keeps the bounded undo log of grid snapshots.
package history

import (
	"errors"

	"github.com/ha1tch/onepix/internal/pixel"
)

// Limit is the default number of undo steps kept.
const Limit = 20

// ErrEmpty is returned by Pop when there is nothing to undo.
var ErrEmpty = errors.New("history: empty")

// Stack is a LIFO of snapshots backed by a ring buffer. When full, Push
// drops the oldest entry.
type Stack struct {
	buf  []*pixel.Snapshot
	head int // index of the oldest entry
	n    int
}

// New returns a stack holding at most capacity snapshots. A non-positive
// capacity selects Limit.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = Limit
	}
	return &Stack{buf: make([]*pixel.Snapshot, capacity)}
}

// Push records s as the most recent entry.
func (st *Stack) Push(s *pixel.Snapshot) {
	if st.n == len(st.buf) {
		st.buf[st.head] = s
		st.head = (st.head + 1) % len(st.buf)
		return
	}
	st.buf[(st.head+st.n)%len(st.buf)] = s
	st.n++
}

// Pop removes and returns the most recent entry.
func (st *Stack) Pop() (*pixel.Snapshot, error) {
	if st.n == 0 {
		return nil, ErrEmpty
	}
	i := (st.head + st.n - 1) % len(st.buf)
	s := st.buf[i]
	st.buf[i] = nil
	st.n--
	return s, nil
}

// Len returns the number of entries held.
func (st *Stack) Len() int {
	return st.n
}

// Cap returns the maximum number of entries.
func (st *Stack) Cap() int {
	return len(st.buf)
}

// Clear drops every entry.
func (st *Stack) Clear() {
	for i := range st.buf {
		st.buf[i] = nil
	}
	st.head, st.n = 0, 0
}
