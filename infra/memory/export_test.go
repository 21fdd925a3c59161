package memory

// LockCount reports how many account locks the store holds.
func (s *Store) LockCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.locks)
}
