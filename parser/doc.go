// Package parser merges a callable's resolved signature with its parsed
// docstring into one serialized record.
//
// # Precedence
//
// The signature is ground truth for parameter order, types, and
// defaults. The docstring contributes descriptions, optionality, and
// anything the signature cannot express: parameter types when the
// signature only says Any, defaults the signature does not carry, and
// all output naming. The nested docstring record is kept verbatim, so
// a docstring type that disagrees with the signature stays visible
// there while the top-level record reports the signature's type.
//
// # Failure
//
// A parameter default that cannot be represented in the serialized
// form fails the whole parse with a FunctionParamError naming the
// parameter. Everything else degrades: a missing or unparseable
// docstring just yields a record without descriptions.
package parser
