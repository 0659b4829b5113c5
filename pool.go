package imgcore

import "sync"

// Pool is a thread-safe pool for reusing pixel buffers.
//
// Pool groups buffers by byte length, so images of the same size and
// format share a bucket. Every buffer handed out is zeroed.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of exactly n bytes.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns a buffer to the pool. The caller must not use buf afterwards.
// If the bucket is at max capacity, the buffer is discarded.
func (p *Pool) Put(buf []byte) {
	n := len(buf)
	if n == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Len returns the number of buffers held for the given byte length.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// defaultPool is the package-level pool used when no WithPool option is given.
var defaultPool = NewPool(8)
