package vars

import (
	"fmt"
	"sync"
)

// Binding is one live field value in a snapshot.
type Binding struct {
	Name  string
	Value any
}

// Listener observes a committed assignment.
type Listener func(name string, old, new any)

// Set is the live field table of one instance. All methods are safe for
// concurrent use.
type Set struct {
	mu        sync.RWMutex
	defs      map[string]*Value
	values    map[string]any
	order     []string
	listeners []Listener
}

// NewSet creates an empty field table.
func NewSet() *Set {
	return &Set{
		defs:   make(map[string]*Value),
		values: make(map[string]any),
	}
}

// Define installs a field definition and seeds it with its default.
// Redefining an existing name is an error.
func (s *Set) Define(v *Value) error {
	if v == nil || v.Name == "" {
		return fmt.Errorf("%w: unnamed value", ErrUndefined)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.defs[v.Name]; ok {
		return fmt.Errorf("%w: %q", ErrRedefined, v.Name)
	}
	s.defs[v.Name] = v
	s.values[v.Name] = v.Default
	s.order = append(s.order, v.Name)
	return nil
}

// Get returns the current value of the named field.
func (s *Set) Get(name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.defs[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndefined, name)
	}
	return s.values[name], nil
}

// Assign converts value through the field's declared type, runs the
// definition's middleware chain in order, and commits the result. On
// any failure the field keeps its previous value.
func (s *Set) Assign(name string, value any) error {
	s.mu.Lock()

	def, ok := s.defs[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUndefined, name)
	}

	converted, err := convert(value, def.Type)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	for _, mw := range def.middleware {
		converted, err = mw(converted)
		if err != nil {
			s.mu.Unlock()
			return err
		}
	}

	old := s.values[name]
	s.values[name] = converted
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(name, old, converted)
	}
	return nil
}

// Delete refuses to remove a field. Exposure is permanent for the life
// of the table.
func (s *Set) Delete(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.defs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUndefined, name)
	}
	return fmt.Errorf("%w: %q", ErrDeleteRefused, name)
}

// Values returns a snapshot of all fields in definition order.
func (s *Set) Values() []Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Binding, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Binding{Name: name, Value: s.values[name]})
	}
	return out
}

// Definition returns the named field's definition, or nil.
func (s *Set) Definition(name string) *Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defs[name]
}

// OnChange registers a listener for committed assignments. Listeners
// run outside the table lock, after the value is visible.
func (s *Set) OnChange(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
