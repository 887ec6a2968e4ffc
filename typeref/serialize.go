package typeref

// Serialize renders a type as its JSON-schema-flavored shape:
//
//   - named types render as their bare name
//   - unions render as {"anyOf": [...]}, collapsing a single member
//   - fixed tuples render as {"allOf": [...]}
//   - sequences render as {"type": "array", "items": ..., "uniqueItems":
//     true for sets, false for lists}
//   - mappings render as {"type": "object", "keys": ..., "values": ...}
//   - type-of-type renders as {"type": "type", "value": ...}
//   - literals render as {"type": "enum", "values": [...], "keys":
//     [string forms], "nullable": ...}
//
// Nested unions are flat, and a null member folds its "nullable" flag into
// an inner enum rather than nesting another anyOf.
func Serialize(t *Type) any {
	return serialize(t, false)
}

func serialize(t *Type, nullable bool) any {
	switch t.kind {
	case KindNamed:
		return t.name
	case KindList:
		return map[string]any{
			"type":        "array",
			"items":       serialize(t.args[0], false),
			"uniqueItems": false,
		}
	case KindSet:
		return map[string]any{
			"type":        "array",
			"items":       serialize(t.args[0], false),
			"uniqueItems": true,
		}
	case KindDict:
		return map[string]any{
			"type":   "object",
			"keys":   serialize(t.args[0], false),
			"values": serialize(t.args[1], false),
		}
	case KindTuple:
		components := make([]any, len(t.args))
		for i, a := range t.args {
			components[i] = serialize(a, false)
		}
		return map[string]any{"allOf": components}
	case KindTypeOf:
		return map[string]any{
			"type":  "type",
			"value": serialize(t.args[0], false),
		}
	case KindLiteral:
		return serializeLiteral(t, nullable)
	case KindUnion:
		return serializeUnion(t)
	}
	return t.name
}

func serializeUnion(t *Type) any {
	hasNull := false
	nonNull := make([]*Type, 0, len(t.args))
	for _, m := range t.args {
		if m.kind == KindNamed && m.name == "None" {
			hasNull = true
			continue
		}
		nonNull = append(nonNull, m)
	}

	// A nullable wrapping a lone enum folds into the enum itself.
	if hasNull && len(nonNull) == 1 && nonNull[0].kind == KindLiteral {
		return serializeLiteral(nonNull[0], true)
	}

	members := make([]any, 0, len(t.args))
	for _, m := range t.args {
		members = append(members, serialize(m, hasNull))
	}
	if len(members) == 1 {
		return members[0]
	}
	return map[string]any{"anyOf": members}
}

func serializeLiteral(t *Type, nullable bool) map[string]any {
	values := make([]any, 0, len(t.values))
	keys := make([]string, 0, len(t.values))
	for _, v := range t.values {
		if v == nil {
			nullable = true
			continue
		}
		values = append(values, v)
		keys = append(keys, literalKey(v))
	}
	return map[string]any{
		"type":     "enum",
		"values":   values,
		"keys":     keys,
		"nullable": nullable,
	}
}
