// Package expose is the wrapping boundary: it turns a callable into an
// exposed method carrying its serialized record.
//
// Wrap parses a callable once and caches the resulting record on the
// returned Method; wrapping a Method again returns it unchanged, so
// repeated wrapping is idempotent and detectable via IsExposed. A Group
// collects exposed methods by name for later description or search.
//
// This package never calls the wrapped function. It describes
// callables; executing them stays with the caller.
package expose
