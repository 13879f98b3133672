// Package idpool provides a generic allocator of unique identifiers backed
// by a fixed seed list plus on-demand generation.
//
// A pool first serves its seed values in order, which keeps identifiers
// reproducible across runs for test fixtures and demo data. Once the seeds
// are exhausted the pool grows itself by a fixed batch of freshly generated
// values before serving the pending request, so Next never fails.
package idpool

// refillBatchSize is the number of new identifiers appended when the pool
// runs out of available values.
const refillBatchSize = 10

// Pool allocates unique identifiers of type T. Values at indices below the
// cursor have been issued; values at or above it are still available.
//
// Pool is not safe for concurrent use; callers in concurrent contexts must
// synchronize externally.
type Pool[T comparable] struct {
	generate func() T
	pool     []T
	cursor   int
}

// New creates a pool serving the seed values in order before falling back to
// the generate function. The seed slice is copied; a nil seed starts the pool
// empty. The generate function must produce values of the pool's identifier
// shape; duplicates it returns are filtered out, so it only has to be random
// enough to terminate.
func New[T comparable](generate func() T, seed []T) *Pool[T] {
	p := &Pool[T]{
		generate: generate,
		pool:     make([]T, len(seed)),
	}
	copy(p.pool, seed)
	return p
}

// Next returns the next unused identifier, refilling the pool with exactly
// refillBatchSize never-before-seen values when all current values have been
// issued. Within one pool's lifetime no identifier is ever issued twice.
func (p *Pool[T]) Next() T {
	if p.cursor >= len(p.pool) {
		p.refill()
	}
	id := p.pool[p.cursor]
	p.cursor++
	return id
}

// Issued returns how many identifiers the pool has handed out.
func (p *Pool[T]) Issued() int {
	return p.cursor
}

// Capacity returns the current length of the backing list, seeds included.
func (p *Pool[T]) Capacity() int {
	return len(p.pool)
}

// refill appends refillBatchSize generated values not already present in the
// backing list.
func (p *Pool[T]) refill() {
	added := 0
	for added < refillBatchSize {
		candidate := p.generate()
		if p.contains(candidate) {
			continue
		}
		p.pool = append(p.pool, candidate)
		added++
	}
}

func (p *Pool[T]) contains(v T) bool {
	for _, existing := range p.pool {
		if existing == v {
			return true
		}
	}
	return false
}
