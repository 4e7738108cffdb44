package user

// Sequence hands out user ids. It starts at zero and only moves forward.
// A Sequence is not safe for concurrent use; the owning store serialises access.
type Sequence struct {
	next int
}

// NewSequence returns a sequence whose first id is start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}
