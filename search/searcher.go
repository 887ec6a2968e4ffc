package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/jonwraymond/toolexpose/model"
)

// Doc is one searchable callable description.
type Doc struct {
	// ID uniquely identifies the callable, typically its tool ID.
	ID string
	// Name is the bare callable name.
	Name string
	// Summary is the docstring summary, if any.
	Summary string
	// Text is the full searchable prose: name, summary, and parameter
	// descriptions joined together.
	Text string
	// Tags are optional classification labels.
	Tags []string
}

// DocFromRecord builds a searchable document from a serialized record.
func DocFromRecord(id string, rec model.SerializedFunction, tags ...string) Doc {
	parts := []string{rec.Name}
	summary := ""
	if rec.Docstring != nil {
		summary = rec.Docstring.Summary
		parts = append(parts, summary)
	}
	for _, p := range rec.InputParams {
		parts = append(parts, p.Name, p.Description)
	}
	for _, o := range rec.OutputParams {
		parts = append(parts, o.Name, o.Description)
	}
	text := strings.Join(parts, " ")
	return Doc{ID: id, Name: rec.Name, Summary: summary, Text: strings.Join(strings.Fields(text), " "), Tags: tags}
}

// Hit is one ranked search result.
type Hit struct {
	ID    string
	Score float64
	Doc   Doc
}

// Config customizes ranking boosts and safety limits. Zero values take
// the defaults.
type Config struct {
	NameBoost  float64 // boost for name matches (default 3)
	TagsBoost  float64 // boost for tag matches (default 2)
	MaxDocs    int     // limit documents to index (0 = unlimited)
	MaxTextLen int     // truncate long doc text (0 = unlimited)
}

func (c Config) withDefaults() Config {
	if c.NameBoost <= 0 {
		c.NameBoost = 3
	}
	if c.TagsBoost <= 0 {
		c.TagsBoost = 2
	}
	return c
}

// DocSearcher ranks callable descriptions with BM25. The in-memory
// Bleve index is cached by document fingerprint and rebuilt only when
// the document set changes.
type DocSearcher struct {
	mu          sync.RWMutex
	cfg         Config
	idx         bleve.Index
	fingerprint string
	docs        map[string]Doc
}

// NewDocSearcher creates a searcher with the given config.
func NewDocSearcher(cfg Config) *DocSearcher {
	return &DocSearcher{cfg: cfg.withDefaults()}
}

// Close releases the cached index. The searcher may be reused; the next
// Search rebuilds.
func (s *DocSearcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset()
}

func (s *DocSearcher) reset() error {
	s.fingerprint = ""
	s.docs = nil
	if s.idx == nil {
		return nil
	}
	idx := s.idx
	s.idx = nil
	return idx.Close()
}

type indexedDoc struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Tags string `json:"tags"`
}

// Search ranks docs against query and returns at most limit hits.
// An empty query returns the first limit docs in the order given.
func (s *DocSearcher) Search(query string, limit int, docs []Doc) ([]Hit, error) {
	if limit <= 0 {
		return nil, nil
	}
	docs = s.bound(docs)

	if strings.TrimSpace(query) == "" {
		n := limit
		if n > len(docs) {
			n = len(docs)
		}
		hits := make([]Hit, 0, n)
		for _, d := range docs[:n] {
			hits = append(hits, Hit{ID: d.ID, Doc: d})
		}
		return hits, nil
	}

	s.mu.Lock()
	if err := s.ensureIndex(docs); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	idx := s.idx
	byID := s.docs
	s.mu.Unlock()

	q := bleve.NewDisjunctionQuery()
	nameQuery := bleve.NewMatchQuery(query)
	nameQuery.SetField("name")
	nameQuery.SetBoost(s.cfg.NameBoost)
	tagsQuery := bleve.NewMatchQuery(query)
	tagsQuery.SetField("tags")
	tagsQuery.SetBoost(s.cfg.TagsBoost)
	textQuery := bleve.NewMatchQuery(query)
	textQuery.SetField("text")
	q.AddQuery(nameQuery, tagsQuery, textQuery)

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.SortBy([]string{"-_score", "_id"})

	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score, Doc: byID[h.ID]})
	}
	return hits, nil
}

func (s *DocSearcher) bound(docs []Doc) []Doc {
	if s.cfg.MaxDocs > 0 && len(docs) > s.cfg.MaxDocs {
		docs = docs[:s.cfg.MaxDocs]
	}
	if s.cfg.MaxTextLen <= 0 {
		return docs
	}
	out := make([]Doc, len(docs))
	copy(out, docs)
	for i := range out {
		if len(out[i].Text) > s.cfg.MaxTextLen {
			out[i].Text = out[i].Text[:s.cfg.MaxTextLen]
		}
	}
	return out
}

// ensureIndex rebuilds the Bleve index when the document fingerprint
// changed. Callers hold the write lock.
func (s *DocSearcher) ensureIndex(docs []Doc) error {
	fp := computeFingerprint(docs)
	if s.idx != nil && fp == s.fingerprint {
		return nil
	}
	if err := s.reset(); err != nil {
		return err
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	byID := make(map[string]Doc, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
		err := batch.Index(d.ID, indexedDoc{
			Name: d.Name,
			Text: d.Text,
			Tags: strings.Join(d.Tags, " "),
		})
		if err != nil {
			_ = idx.Close()
			return fmt.Errorf("index doc %s: %w", d.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return fmt.Errorf("apply batch: %w", err)
	}

	s.idx = idx
	s.docs = byID
	s.fingerprint = fp
	return nil
}
