package network

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/cardtable-online/server/game"
)

// Registry maps connection ids to live connections. It exists only to
// address outbound snapshots; membership changes on connect and disconnect.
type Registry struct {
	mu    sync.Mutex
	conns *hashmap.HashMap
}

func NewRegistry() *Registry {
	return &Registry{conns: hashmap.New()}
}

// AddIfBelow inserts c only while the registry holds fewer than capacity
// connections. Check and insert happen under one lock so concurrent
// upgrades cannot overshoot the cap.
func (r *Registry) AddIfBelow(c *Conn, capacity int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Len() >= capacity {
		return false
	}
	r.conns.Set(c.ID(), c)
	return true
}

func (r *Registry) Remove(id string) {
	r.conns.Del(id)
}

func (r *Registry) Get(id string) (game.Conn, bool) {
	if v, ok := r.conns.Get(id); ok {
		return v.(*Conn), true
	}
	return nil, false
}

func (r *Registry) Len() int {
	count := 0
	r.conns.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

func (r *Registry) Range(fn func(c game.Conn)) {
	r.conns.Foreach(func(e *hashmap.Entry) {
		fn(e.Value().(*Conn))
	})
}
