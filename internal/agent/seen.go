package agent

// seenKey identifies one (process, signature) pairing for deduplication.
// The command line is deliberately not part of the key: a process is
// "known" once logged under a signature, even if its arguments mutate.
type seenKey struct {
	pid int32
	sig string
}

// SeenSet suppresses repeat event emission within one agent run. It grows
// monotonically and is never pruned — an accepted memory tradeoff for a
// long-running agent. A restart resets it (pid reuse across restarts is an
// accepted limitation).
type SeenSet struct {
	keys map[seenKey]struct{}
}

// NewSeenSet returns an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{keys: make(map[seenKey]struct{})}
}

// Seen reports whether the (pid, signature) pair was already logged this run.
func (s *SeenSet) Seen(pid int32, sig string) bool {
	_, ok := s.keys[seenKey{pid: pid, sig: sig}]
	return ok
}

// Mark records the pair so later cycles suppress it.
func (s *SeenSet) Mark(pid int32, sig string) {
	s.keys[seenKey{pid: pid, sig: sig}] = struct{}{}
}

// Len returns the number of tracked pairs.
func (s *SeenSet) Len() int {
	return len(s.keys)
}
