// Package loading tracks which API calls are in flight so a UI can render busy state.
package loading

import (
	"net/http"
	"sync"
)

type Listener func(snapshot map[string]bool)

type subscription struct {
	id uint64
	fn Listener
}

type Registry struct {
	mu        sync.Mutex
	state     map[string]bool
	listeners []subscription
	nextID    uint64
}

func NewRegistry() *Registry {
	return &Registry{
		state: make(map[string]bool),
	}
}

// Key identifies a call by method and path; query and body are ignored.
func Key(method, path string) string {
	if method == "" {
		method = http.MethodGet
	}
	return method + " " + path
}

// SetLoading updates key and notifies every listener, in subscription order,
// with a copy of the full state.
func (r *Registry) SetLoading(key string, loading bool) {
	r.mu.Lock()
	r.state[key] = loading
	snapshot := r.snapshotLocked()
	listeners := make([]subscription, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, l := range listeners {
		l.fn(snapshot)
	}
}

func (r *Registry) IsLoading(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state[key]
}

// AnyLoading reports whether at least one key is busy.
func (r *Registry) AnyLoading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.state {
		if v {
			return true
		}
	}
	return false
}

func (r *Registry) Snapshot() map[string]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Subscribe returns an idempotent unsubscribe func.
func (r *Registry) Subscribe(fn Listener) func() {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, subscription{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, l := range r.listeners {
				if l.id == id {
					r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Track marks key busy and returns a release func that clears it exactly once,
// however many times it is called.
func (r *Registry) Track(key string) (release func()) {
	r.SetLoading(key, true)
	var once sync.Once
	return func() {
		once.Do(func() { r.SetLoading(key, false) })
	}
}

func (r *Registry) snapshotLocked() map[string]bool {
	out := make(map[string]bool, len(r.state))
	for k, v := range r.state {
		out[k] = v
	}
	return out
}
