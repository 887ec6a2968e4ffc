// Package model defines the shared data model for normalized callable
// metadata: input and output parameters, parsed documentation records, and
// the terminal SerializedFunction artifact that downstream consumers (tool
// registries, RPC layers, visual programming surfaces) treat as pure data.
//
// # Records
//
// SerializedFunction is the canonical description of one callable. Its
// InputParams follow the callable's declared parameter order; OutputParams
// carry synthesized names (out, or out0/out1/... for multiple outputs) when
// the documentation did not supply any. The Docstring field retains the
// parsed documentation verbatim, including values that disagree with the
// signature, so both information sources stay inspectable.
//
// # Invariants
//
//   - InputParam.Optional is true whenever a default is present.
//   - A positional parameter without a default is never optional.
//   - Docstring.Original always holds the unmodified source text.
//
// Records are plain values. Producers hand out fresh copies on every parse;
// callers may mutate their copies freely without affecting the producer.
package model
