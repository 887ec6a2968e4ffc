package registry

import (
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	exposemodel "github.com/jonwraymond/toolexpose/model"
	"github.com/jonwraymond/toolexpose/typeref"
)

// LocalToolOption configures local tool registration.
type LocalToolOption func(*localToolConfig)

type localToolConfig struct {
	namespace   string
	tags        []string
	version     string
	description string
}

// WithNamespace sets the namespace for a local tool.
func WithNamespace(ns string) LocalToolOption {
	return func(c *localToolConfig) {
		c.namespace = ns
	}
}

// WithTags sets the tags for a local tool.
func WithTags(tags ...string) LocalToolOption {
	return func(c *localToolConfig) {
		c.tags = tags
	}
}

// WithVersion sets the version for a local tool.
func WithVersion(v string) LocalToolOption {
	return func(c *localToolConfig) {
		c.version = v
	}
}

// WithDescription overrides the description taken from the docstring
// summary.
func WithDescription(d string) LocalToolOption {
	return func(c *localToolConfig) {
		c.description = d
	}
}

func applyLocalToolOptions(opts []LocalToolOption) localToolConfig {
	cfg := localToolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// buildLocalTool converts a serialized record to the wire tool shape.
func buildLocalTool(rec exposemodel.SerializedFunction, cfg localToolConfig, reg *typeref.Registry) model.Tool {
	description := cfg.description
	if description == "" && rec.Docstring != nil {
		description = rec.Docstring.Summary
	}

	tool := model.Tool{
		Tool: mcp.Tool{
			Name:        rec.Name,
			Description: description,
			InputSchema: inputSchema(rec.InputParams, reg),
		},
		Namespace: cfg.namespace,
		Version:   cfg.version,
		Tags:      model.NormalizeTags(cfg.tags),
	}
	return tool
}

// inputSchema renders the parameters as a JSON-schema-flavored object:
// each property carries the serialized type, and parameters a caller
// must supply by position are listed as required.
func inputSchema(params []exposemodel.InputParam, reg *typeref.Registry) map[string]any {
	properties := make(map[string]any, len(params))
	required := make([]string, 0, len(params))

	for _, p := range params {
		properties[p.Name] = paramSchema(p, reg)
		if p.Positional {
			required = append(required, p.Name)
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func paramSchema(p exposemodel.InputParam, reg *typeref.Registry) any {
	var schema any = p.Type
	if p.Type != "" {
		if t, err := reg.FromText(p.Type); err == nil {
			schema = typeref.Serialize(t)
		}
	}

	if p.Description == "" && !p.HasDefault {
		return schema
	}
	m, ok := schema.(map[string]any)
	if !ok {
		m = map[string]any{"type": schema}
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.HasDefault {
		m["default"] = p.Default
	}
	return m
}
