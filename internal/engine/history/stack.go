package history

import "time"

// DefaultCapacity is the number of snapshots retained when no positive
// capacity is given.
const DefaultCapacity = 50

// entry wraps a snapshot with metadata.
type entry struct {
	snapshot  string
	timestamp time.Time
}

// Info describes a retained snapshot without exposing stack internals.
type Info struct {
	// Size is the snapshot length in bytes.
	Size int

	// Timestamp is when the snapshot was recorded.
	Timestamp time.Time
}

// Stack is a bounded LIFO of document snapshots backed by a ring buffer.
//
// Stack is not safe for concurrent use; the owning engine serializes access.
type Stack struct {
	buf   []entry
	head  int // index of the oldest entry
	count int

	// now is replaceable in tests.
	now func() time.Time
}

// NewStack creates a stack that retains at most capacity snapshots.
// A non-positive capacity selects DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		buf: make([]entry, capacity),
		now: time.Now,
	}
}

// Record appends a snapshot. If the stack is full, the oldest snapshot is
// evicted first. Record reports whether an eviction happened.
func (s *Stack) Record(snapshot string) (evicted bool) {
	e := entry{snapshot: snapshot, timestamp: s.now()}

	if s.count == len(s.buf) {
		// Overwrite the oldest slot and advance head.
		s.buf[s.head] = e
		s.head = (s.head + 1) % len(s.buf)
		return true
	}

	s.buf[s.index(s.count)] = e
	s.count++
	return false
}

// Pop removes and returns the most recently recorded snapshot.
// It reports false when the stack is empty.
func (s *Stack) Pop() (string, bool) {
	if s.count == 0 {
		return "", false
	}

	i := s.index(s.count - 1)
	snapshot := s.buf[i].snapshot
	s.buf[i] = entry{}
	s.count--
	return snapshot, true
}

// Peek returns the most recent snapshot without removing it.
func (s *Stack) Peek() (string, bool) {
	if s.count == 0 {
		return "", false
	}
	return s.buf[s.index(s.count-1)].snapshot, true
}

// Len returns the number of retained snapshots.
func (s *Stack) Len() int {
	return s.count
}

// Cap returns the maximum number of retained snapshots.
func (s *Stack) Cap() int {
	return len(s.buf)
}

// Clear discards all snapshots. Capacity is unchanged.
func (s *Stack) Clear() {
	for i := range s.buf {
		s.buf[i] = entry{}
	}
	s.head = 0
	s.count = 0
}

// SetCapacity changes the maximum number of retained snapshots.
// If more snapshots are held than the new capacity allows, the oldest are
// dropped. A non-positive capacity selects DefaultCapacity.
func (s *Stack) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity == len(s.buf) {
		return
	}

	keep := s.count
	if keep > capacity {
		keep = capacity
	}

	buf := make([]entry, capacity)
	// Copy the newest keep entries, oldest first.
	for i := 0; i < keep; i++ {
		buf[i] = s.buf[s.index(s.count-keep+i)]
	}

	s.buf = buf
	s.head = 0
	s.count = keep
}

// Snapshots returns the retained snapshots, oldest first.
func (s *Stack) Snapshots() []string {
	result := make([]string, s.count)
	for i := 0; i < s.count; i++ {
		result[i] = s.buf[s.index(i)].snapshot
	}
	return result
}

// Info returns metadata for the retained snapshots, oldest first.
func (s *Stack) Info() []Info {
	result := make([]Info, s.count)
	for i := 0; i < s.count; i++ {
		e := s.buf[s.index(i)]
		result[i] = Info{
			Size:      len(e.snapshot),
			Timestamp: e.timestamp,
		}
	}
	return result
}

// index maps a logical position (0 = oldest) to a slot in buf.
func (s *Stack) index(pos int) int {
	return (s.head + pos) % len(s.buf)
}
