package colorlut

import "sync/atomic"

// tableSlot exclusively owns at most one packed table. Replacing the table
// is a single atomic swap; the previous table is released only after the
// new one is visible, so a reader never observes a released table in the
// slot.
type tableSlot struct {
	p atomic.Pointer[Table]
}

// load returns the held table, if any.
func (s *tableSlot) load() (*Table, bool) {
	t := s.p.Load()
	return t, t != nil
}

// replace takes ownership of t and releases the previously held table.
func (s *tableSlot) replace(t *Table) {
	if old := s.p.Swap(t); old != nil && old != t {
		old.Release()
	}
}

// clear releases the held table and leaves the slot empty.
func (s *tableSlot) clear() {
	s.replace(nil)
}
