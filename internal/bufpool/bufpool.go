// Package bufpool provides a sync.Pool-backed []byte pool shared by the
// login and character servers, grounded on the teacher's per-package
// BytePool (internal/login/bufpool.go, internal/gameserver/bufpool.go) —
// consolidated here since both servers need the identical behavior.
package bufpool

import "sync"

// Pool is a pool of reusable []byte buffers, reducing GC pressure from
// per-packet allocation.
type Pool struct {
	pool sync.Pool
}

// New creates a pool whose freshly allocated slices start at defaultCap.
func New(defaultCap int) *Pool {
	p := &Pool{}
	p.pool.New = func() any {
		return make([]byte, 0, defaultCap)
	}
	return p
}

// Get returns a slice of length size, reused from the pool when possible.
func (p *Pool) Get(size int) []byte {
	b := p.pool.Get().([]byte)
	if cap(b) < size {
		p.pool.Put(b)
		return make([]byte, size)
	}
	b = b[:size]
	clear(b)
	return b
}

// Put returns a slice to the pool for reuse.
func (p *Pool) Put(b []byte) {
	if b == nil {
		return
	}
	p.pool.Put(b[:0])
}
