package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/toolexpose/expose"
	"github.com/jonwraymond/toolexpose/search"
	"github.com/jonwraymond/toolexpose/typeref"
)

// Config configures a Registry.
type Config struct {
	ServerInfo   ServerInfo
	SearchConfig *search.Config
	TypeRegistry *typeref.Registry
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry is a description-only MCP tool registry over exposed
// methods, with built-in free-text search.
type Registry struct {
	mu       sync.RWMutex
	config   Config
	tools    map[string]model.Tool
	docs     map[string]search.Doc
	searcher *search.DocSearcher
}

// New creates a new Registry with the given config.
func New(cfg Config) *Registry {
	searchCfg := search.Config{}
	if cfg.SearchConfig != nil {
		searchCfg = *cfg.SearchConfig
	}
	if cfg.TypeRegistry == nil {
		cfg.TypeRegistry = typeref.Default
	}

	return &Registry{
		config:   cfg,
		tools:    make(map[string]model.Tool),
		docs:     make(map[string]search.Doc),
		searcher: search.NewDocSearcher(searchCfg),
	}
}

// Register publishes an exposed method as a tool. Its cached record
// supplies the name, description, and input schema; re-registering the
// same tool ID replaces the entry.
func (r *Registry) Register(m *expose.Method, opts ...LocalToolOption) error {
	if m == nil {
		return fmt.Errorf("%w: nil method", ErrInvalidRequest)
	}
	cfg := applyLocalToolOptions(opts)
	rec := m.Record()

	tool := buildLocalTool(rec, cfg, r.config.TypeRegistry)
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}

	id := tool.ToolID()
	doc := search.DocFromRecord(id, rec, tool.Tags...)

	r.mu.Lock()
	r.tools[id] = tool
	r.docs[id] = doc
	r.mu.Unlock()

	return nil
}

// GetTool returns a tool by ID.
func (r *Registry) GetTool(ctx context.Context, id string) (model.Tool, error) {
	r.mu.RLock()
	tool, ok := r.tools[id]
	r.mu.RUnlock()

	if !ok {
		return model.Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return tool, nil
}

// ListAll returns all registered tools in stable ID order.
func (r *Registry) ListAll(ctx context.Context) ([]model.Tool, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.tools))
	for id := range r.tools {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)

	tools := make([]model.Tool, 0, len(ids))
	r.mu.RLock()
	for _, id := range ids {
		tools = append(tools, r.tools[id])
	}
	r.mu.RUnlock()

	return tools, nil
}

// Search ranks registered tools against a free-text query.
func (r *Registry) Search(ctx context.Context, query string, limit int) ([]model.Tool, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	docs := make([]search.Doc, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, r.docs[id])
	}
	r.mu.RUnlock()

	hits, err := r.searcher.Search(query, limit, docs)
	if err != nil {
		return nil, err
	}

	tools := make([]model.Tool, 0, len(hits))
	r.mu.RLock()
	for _, h := range hits {
		if tool, ok := r.tools[h.ID]; ok {
			tools = append(tools, tool)
		}
	}
	r.mu.RUnlock()
	return tools, nil
}

// Close releases the search index.
func (r *Registry) Close() error {
	return r.searcher.Close()
}

// Stats returns registry statistics.
type Stats struct {
	TotalTools int
	Namespaces int
}

// RegistryStats returns counts over the registered tools.
func (r *Registry) RegistryStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	namespaces := make(map[string]struct{})
	for _, tool := range r.tools {
		namespaces[tool.Namespace] = struct{}{}
	}
	return Stats{
		TotalTools: len(r.tools),
		Namespaces: len(namespaces),
	}
}
