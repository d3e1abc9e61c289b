package px

import "github.com/gogpu/px/internal/parallel"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	pool := px.NewWorkerPool(0)
//	defer pool.Close()
//	r := px.NewRenderer(pm, px.WithWorkerPool(pool), px.WithFont(table))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	font []byte
	pool *parallel.WorkerPool
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		font: nil, // resolved lazily to glyphs.Basic()
		pool: nil, // serial blits
	}
}

// WithFont sets the glyph table used by Char and Text. The table is a flat
// byte slice where glyph c occupies the 16 bytes starting at c*16, one byte
// per row, most significant bit leftmost.
func WithFont(table []byte) RendererOption {
	return func(o *rendererOptions) {
		o.font = table
	}
}

// WithWorkerPool lets Image split large, fully visible blits into disjoint
// row bands executed on the pool. The Renderer does not take ownership;
// the caller closes the pool.
func WithWorkerPool(p *WorkerPool) RendererOption {
	return func(o *rendererOptions) {
		if p != nil {
			o.pool = p.pool
		}
	}
}

// WorkerPool is a handle to a pool of goroutines used for parallel blits.
type WorkerPool struct {
	pool *parallel.WorkerPool
}

// NewWorkerPool starts a pool with the given number of workers.
// Zero or negative means GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	return &WorkerPool{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.pool.Workers()
}

// Close stops the pool after draining queued work. Safe to call twice.
func (p *WorkerPool) Close() {
	p.pool.Close()
}
