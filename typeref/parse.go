package typeref

import (
	"regexp"
	"strconv"
	"strings"
)

var optionalWord = regexp.MustCompile(`\s*,?\s*\boptional\b\s*,?\s*`)

// FromText resolves a textual type name to its identity. Resolution order:
// registered names (builtins, aliases, previously interned composites),
// parameterized container forms, dotted names via the resolver, and as a
// last resort a stray "optional" word wrapping the remainder as nullable.
// An unresolvable name fails with a TypeNotFoundError carrying the text;
// a resolver failure is chained as its cause.
func FromText(text string) (*Type, error) { return Default.FromText(text) }

// FromText resolves a textual type name against this registry. See the
// package-level FromText.
func (r *Registry) FromText(text string) (*Type, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimRight(trimmed, ".,;: \t")
	if trimmed == "" {
		return nil, &TypeNotFoundError{Name: text}
	}

	if t := r.lookup(trimmed); t != nil {
		return t, nil
	}

	if name, args, ok := splitGeneric(trimmed); ok {
		t, err := r.fromGeneric(trimmed, name, args)
		if err != nil {
			return nil, err
		}
		// Register the input spelling alongside the canonical rendering so
		// repeated parses of the same text stay cheap.
		r.addAlias(trimmed, t)
		return t, nil
	}

	var cause error
	if strings.Contains(trimmed, ".") && r.resolver != nil {
		t, err := r.resolver(trimmed)
		if err == nil && t != nil {
			r.addAlias(trimmed, t)
			return t, nil
		}
		cause = err
	}

	if stripped := optionalWord.ReplaceAllString(trimmed, " "); stripped != trimmed {
		inner, err := r.FromText(stripped)
		if err == nil {
			return r.OptionalOf(inner), nil
		}
	}

	return nil, &TypeNotFoundError{Name: trimmed, cause: cause}
}

func (r *Registry) fromGeneric(full, name string, args []string) (*Type, error) {
	resolveAll := func() ([]*Type, error) {
		out := make([]*Type, len(args))
		for i, a := range args {
			t, err := r.FromText(a)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	}
	resolveOne := func() (*Type, error) {
		if len(args) != 1 {
			return nil, &TypeNotFoundError{Name: full}
		}
		return r.FromText(args[0])
	}

	switch name {
	case "List", "list":
		elem, err := resolveOne()
		if err != nil {
			return nil, err
		}
		return r.ListOf(elem), nil
	case "Set", "set", "FrozenSet", "frozenset":
		elem, err := resolveOne()
		if err != nil {
			return nil, err
		}
		return r.SetOf(elem), nil
	case "Dict", "dict", "Mapping", "Map":
		if len(args) != 2 {
			return nil, &TypeNotFoundError{Name: full}
		}
		key, err := r.FromText(args[0])
		if err != nil {
			return nil, err
		}
		value, err := r.FromText(args[1])
		if err != nil {
			return nil, err
		}
		return r.DictOf(key, value), nil
	case "Tuple", "tuple":
		components, err := resolveAll()
		if err != nil {
			return nil, err
		}
		return r.TupleOf(components...), nil
	case "Union", "union":
		members, err := resolveAll()
		if err != nil {
			return nil, err
		}
		return r.UnionOf(members...), nil
	case "Optional", "optional":
		elem, err := resolveOne()
		if err != nil {
			return nil, err
		}
		return r.OptionalOf(elem), nil
	case "Type", "type":
		elem, err := resolveOne()
		if err != nil {
			return nil, err
		}
		return r.TypeOfType(elem), nil
	case "Literal", "literal":
		values := make([]any, len(args))
		for i, a := range args {
			v, err := parseLiteralValue(a)
			if err != nil {
				return nil, &TypeNotFoundError{Name: full, cause: err}
			}
			values[i] = v
		}
		return r.LiteralOf(values...), nil
	}
	return nil, &TypeNotFoundError{Name: full}
}

// splitGeneric matches one level of "Name[Args...]" and splits Args on
// top-level commas, respecting nested brackets and quoted strings.
func splitGeneric(text string) (name string, args []string, ok bool) {
	open := strings.IndexByte(text, '[')
	if open <= 0 || !strings.HasSuffix(text, "]") {
		return "", nil, false
	}
	name = text[:open]
	for _, c := range name {
		if !isWordRune(c) {
			return "", nil, false
		}
	}
	inner := text[open+1 : len(text)-1]
	return name, splitTopLevel(inner), true
}

func splitTopLevel(s string) []string {
	var (
		parts   []string
		start   int
		depth   int
		quote   rune
		escaped bool
	)
	for i, c := range s {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(parts) > 0 {
		parts = append(parts, last)
	}
	return parts
}

// parseLiteralValue reads one literal scalar: a quoted string, an integer,
// a float, a boolean, or the null literal.
func parseLiteralValue(s string) (any, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "None", "null":
		return nil, nil
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	}
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			body := s[1 : len(s)-1]
			body = strings.ReplaceAll(body, `\'`, "'")
			body = strings.ReplaceAll(body, `\"`, `"`)
			body = strings.ReplaceAll(body, `\\`, `\`)
			return body, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return nil, &TypeNotFoundError{Name: s}
}

func isWordRune(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
