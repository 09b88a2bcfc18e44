package router

// StackEntry is one remembered screen: the identifier, the input it ran with,
// and any resume state it returned.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack holds navigation history so a transition can return to an earlier
// screen with its original input.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Root returns the first entry ever pushed and drops everything above it.
// Used to start over from the beginning of a flow.
func (s *Stack) Root() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	s.entries = s.entries[:1]
	entry := s.entries[0]
	return &entry
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
