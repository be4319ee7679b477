package model

import "sync"

// GridPool recycles generation buffers between steps. The zero value is not
// usable; a nil *GridPool is, and simply allocates.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get returns an all-dead grid of the given shape
func (p *GridPool) Get(width, height int) *Grid {
	if p == nil {
		return NewGrid(width, height)
	}
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put hands a grid back for reuse. The caller must not touch g afterwards.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.pool.Put(g)
}
