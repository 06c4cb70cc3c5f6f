package terminal

import (
	"sync"
)

type (
	registryKey struct {
		tty  string
		term string
	}
	// Registry keeps one Terminal per (tty, term) pair. Entries are only
	// dropped by Delete and Reset.
	Registry struct {
		mu        sync.Mutex
		terminals map[registryKey]*Terminal
		opts      []Option
	}
)

// NewRegistry stores opts for every Terminal that Get opens.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		terminals: make(map[registryKey]*Terminal),
		opts:      opts,
	}
}

func keyOf(tty string, term string) registryKey {
	if tty == "" {
		tty = DefaultTTY
	}
	return registryKey{tty: tty, term: term}
}

// Get returns the registered terminal for (tty, term), opening and
// registering it first when there is none.
func (r *Registry) Get(tty string, term string) (*Terminal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(tty, term)
	if t, ok := r.terminals[key]; ok {
		return t, nil
	}
	t, err := Open(tty, term, r.opts...)
	if err != nil {
		return nil, err
	}
	r.terminals[key] = t
	return t, nil
}

func (r *Registry) Lookup(tty string, term string) (*Terminal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.terminals[keyOf(tty, term)]
	return t, ok
}

// Put registers t under its own tty and term, replacing any previous entry.
func (r *Registry) Put(t *Terminal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminals[keyOf(t.TTY(), t.Term())] = t
}

func (r *Registry) Delete(tty string, term string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := keyOf(tty, term)
	_, ok := r.terminals[key]
	delete(r.terminals, key)
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.terminals)
}

// Reset drops every entry without closing the terminals.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminals = make(map[registryKey]*Terminal)
}
