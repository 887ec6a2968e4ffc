// Package search provides BM25-based free-text search over exposed
// callable descriptions.
//
// It exists to:
//   - Let consumers discover callables by prose, not just exact name
//   - Keep the registry small; ranking lives behind one type
//
// # Usage
//
// The primary type is [DocSearcher]:
//
//	s := search.NewDocSearcher(search.Config{})
//	defer s.Close()
//	hits, err := s.Search("parse docstring", 10, docs)
//
// # Configuration
//
// [Config] allows customization of field boosts and safety limits:
//
//	cfg := search.Config{
//	    NameBoost:  3,    // Boost name matches (default: 3)
//	    TagsBoost:  2,    // Boost tag matches (default: 2)
//	    MaxDocs:    1000, // Limit documents to index (0 = unlimited)
//	    MaxTextLen: 5000, // Truncate long doc text (0 = unlimited)
//	}
//
// # Thread Safety
//
// DocSearcher is safe for concurrent use. It uses an internal RWMutex to
// protect index state and caches the Bleve index based on document
// fingerprints, only rebuilding when the document set changes.
//
// # Behavior
//
// Empty queries return the first N documents in the order given.
// Non-empty queries use BM25 ranking with deterministic tie-breaking
// (score DESC, then ID ASC).
package search
