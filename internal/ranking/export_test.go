package ranking

// InflightLocks counts the regeneration locks currently tracked, for tests
func (r *Ranker) InflightLocks() int {
	n := 0
	r.inflight.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
