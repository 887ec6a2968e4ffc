// Package docstring parses free-text documentation of a callable into a
// standardized model.Docstring record. Three textual dialects are
// supported, each with its own grammar:
//
//   - structured-field style (":param a: ...", ":type a: int", ":raises",
//     ":return:", ":rtype:"), parsed by [ParseREST]
//   - sectioned style ("Args:", "Returns:", "Raises:" headers with
//     "name (type): description" entries), parsed by [ParseGoogle]
//   - scientific style ("Parameters" over a dashed underline, "name : type"
//     entries with indented descriptions), parsed by [ParseNumpy]
//
// [Select] inspects a docstring's markers and picks the dialect. [Parse]
// is the caller-facing entry point: it selects, parses, and degrades to a
// summary-only record (full text kept as the summary, original preserved)
// when no dialect matches or the chosen grammar fails. The dialect entry
// points themselves surface grammar errors so callers that want hard
// failures can branch on them.
//
// Every parse runs the same normalization pass: descriptions are trimmed
// and punctuated, embedded "defaults to X" clauses become structured
// defaults coerced through the declared type, optional/positional flags
// are inferred when the dialect did not set them, and unnamed outputs
// receive out/out0/out1/... names. Type fragments resolve through a
// typeref registry; a fragment that fails resolution leaves the type
// unset rather than aborting the parse — partial information beats total
// failure.
package docstring
