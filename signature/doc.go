// Package signature resolves Go callables into effective signatures.
//
// # Overview
//
// A Callable couples a function value with its metadata: a name, a doc
// text, and a Signature listing parameters in declaration order with
// their types and defaults. FromFunc builds one by reflection over any
// Go func; Partial and PartialNamed fold bound arguments out of the
// visible parameter list; Bound wraps a method value so the receiver
// never appears as a parameter.
//
// # Resolution
//
// Resolve unwraps nested partial layers and returns the effective
// Signature together with the innermost base callable, so downstream
// consumers see the parameters an eventual caller would still have to
// supply.
//
// # Thread Safety
//
// Callables are immutable after construction and safe for concurrent
// use.
package signature
