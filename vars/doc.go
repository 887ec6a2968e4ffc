// Package vars exposes live, typed values through explicit per-instance
// field tables.
//
// A Value is a field definition: a name, a default, and a declared type
// inferred from the default when not given. A Set holds the live values
// of one instance: Define installs a definition, Assign converts and
// commits a new value through the definition's middleware chain, and
// change listeners observe committed values. Deleting a defined field
// is always refused; exposure is a contract, not a suggestion.
//
// Assignment conversion follows the declared type: numeric values
// convert across int and float (float truncates toward zero when the
// target is int), strings parse into numeric and bool targets, and
// anything renders into a string target. A value with no conversion
// path fails with ErrConvert and the field keeps its previous value.
package vars
