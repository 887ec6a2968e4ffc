package expose

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/toolexpose/signature"
)

// Error values for consistent error handling by callers.
var (
	ErrNotFound      = errors.New("method not found")
	ErrInvalidMethod = errors.New("invalid method")
)

// Group is a named collection of exposed methods.
type Group struct {
	mu      sync.RWMutex
	methods map[string]*Method
}

// NewGroup creates an empty method group.
func NewGroup() *Group {
	return &Group{methods: make(map[string]*Method)}
}

// Add registers a method under its record name and returns that name.
// Re-adding a name replaces the previous entry.
func (g *Group) Add(m *Method) (string, error) {
	if m == nil || m.record.Name == "" {
		return "", ErrInvalidMethod
	}

	g.mu.Lock()
	g.methods[m.record.Name] = m
	g.mu.Unlock()

	return m.record.Name, nil
}

// AddBound wraps the named methods of receiver and adds each of them.
func (g *Group) AddBound(receiver any, names ...string) error {
	for _, name := range names {
		c, err := signature.Bound(receiver, name)
		if err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
		m, err := Wrap(c)
		if err != nil {
			return fmt.Errorf("wrap %s: %w", name, err)
		}
		if _, err := g.Add(m); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a method by name.
func (g *Group) Get(name string) (*Method, error) {
	if name == "" {
		return nil, ErrInvalidMethod
	}

	g.mu.RLock()
	m, ok := g.methods[name]
	g.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

// List returns all methods in stable name order.
func (g *Group) List() []*Method {
	g.mu.RLock()
	names := make([]string, 0, len(g.methods))
	for name := range g.methods {
		names = append(names, name)
	}
	g.mu.RUnlock()

	sort.Strings(names)

	result := make([]*Method, 0, len(names))
	g.mu.RLock()
	for _, name := range names {
		result = append(result, g.methods[name])
	}
	g.mu.RUnlock()

	return result
}
