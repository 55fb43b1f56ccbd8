package model

import "sync"

// UniversePool recycles universes of one fixed size
type UniversePool struct {
	width  int
	height int
	pool   sync.Pool
}

func NewUniversePool(width, height int) *UniversePool {
	p := &UniversePool{width: width, height: height}
	p.pool.New = func() interface{} {
		return New(width, height)
	}
	return p
}

// Get retrieves an all-Dead universe from the pool
func (p *UniversePool) Get() *Universe {
	return p.pool.Get().(*Universe)
}

// Put clears the universe and returns it to the pool. Universes of another
// size are dropped.
func (p *UniversePool) Put(u *Universe) {
	if u == nil || u.width != p.width || u.height != p.height {
		return
	}
	u.Clear()
	p.pool.Put(u)
}
