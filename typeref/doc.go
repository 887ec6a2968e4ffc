// Package typeref is a bidirectional codec between type identities and
// their canonical textual names. It backs every place the library stores or
// parses a type: signature annotations, documentation type fragments, and
// the JSON-schema-flavored shapes handed to tool registries.
//
// # Types
//
// A [Type] is an immutable descriptor: either a named type (a canonical
// name, optionally tied to a runtime reflect.Type) or a composite built
// from a container kind and element types. Supported composites are
// List[T], Dict[K, V], Tuple[A, B, ...], Union[A, B, ...] (Optional[T] is
// canonicalized to Union[T, None]), Set[T], Type[T], and Literal[...] with
// scalar values.
//
// # Registry
//
// A [Registry] interns types, so two ways of arriving at the same
// structure yield the same *Type and FromText(ToText(t)) == t holds by
// identity. The registry is append-only and first-registration-wins: a
// later attempt to reuse a name for a different type is ignored, which
// keeps repeated parsing idempotent and registration races benign. The
// package-level [Default] registry is seeded with the builtin primitives
// and container names; tests that need isolation construct their own via
// [NewRegistry].
//
// Dotted names ("datetime.datetime") resolve through the registry first
// and then through an injectable [Resolver]; there is no dynamic loading.
// A failed resolution surfaces as a [TypeNotFoundError] carrying the
// offending text, with the resolver's error chained as the cause.
//
// # Thread Safety
//
// Registries are safe for concurrent use. Registration contention is
// expected to be negligible: the codec runs at definition time, not on a
// request path.
package typeref
