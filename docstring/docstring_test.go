package docstring

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jonwraymond/toolexpose/model"
)

// parserFunc adapts the dialect entry points to one scenario-suite shape.
type parserFunc func(text string, opts ...Option) (model.Docstring, error)

// parseAlways wraps the never-failing top-level Parse.
func parseAlways(text string, opts ...Option) (model.Docstring, error) {
	return Parse(text, opts...), nil
}

type scenario struct {
	name string
	text string
	want model.Docstring
}

func checkScenarios(t *testing.T, parse parserFunc, scenarios []scenario) {
	t.Helper()
	for _, sc := range scenarios {
		got, err := parse(sc.text)
		if err != nil {
			t.Errorf("%s: parse failed: %v", sc.name, err)
			continue
		}
		want := sc.want
		want.Original = sc.text
		if want.InputParams == nil {
			want.InputParams = []model.InputParam{}
		}
		if want.OutputParams == nil {
			want.OutputParams = []model.OutputParam{}
		}
		if want.Exceptions == nil {
			want.Exceptions = map[string]string{}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s:\n got %#v\nwant %#v", sc.name, got, want)
		}
	}
}

// Shared expectations: the same semantic docstring expressed in each
// dialect must normalize to the same record.

func basicWant() model.Docstring {
	return model.Docstring{
		Summary: "A basic function.",
		InputParams: []model.InputParam{
			{
				Name: "a", Type: "int",
				Default: 1, HasDefault: true,
				Optional: true, Positional: false,
				Description: "The first parameter.",
			},
			{
				Name: "b", Type: "str",
				Positional: true, Optional: false,
				Description: "The second parameter.",
			},
		},
		OutputParams: []model.OutputParam{
			{Name: "out", Type: "str", Description: "A string representation."},
		},
		Exceptions: map[string]string{"ValueError": "When something is wrong."},
	}
}

func restScenarios() []scenario {
	return []scenario{
		{
			name: "basic",
			text: `
	A basic function.

	:param a: The first parameter, defaults to '1'
	:type a: int, optional
	:param b: The second parameter
	:type b: str
	:raises ValueError: When something is wrong.
	:return: A string representation.
	:rtype: str
	`,
			want: basicWant(),
		},
		{
			name: "only summary",
			text: "\n\tJust a summary.\n\t",
			want: model.Docstring{Summary: "Just a summary."},
		},
		{
			name: "only params",
			text: `
	Summary here.

	:param a: Description for a.
	:type a: int

	:param b: b is an optional integer.
	:type b: int, optional
	`,
			want: model.Docstring{
				Summary: "Summary here.",
				InputParams: []model.InputParam{
					{Name: "a", Type: "int", Positional: true, Description: "Description for a."},
					{Name: "b", Type: "int", Optional: true, Description: "b is an optional integer."},
				},
			},
		},
		{
			name: "only return",
			text: "\n\tSummary for this one.\n\n\t:return: Some output.\n\t:rtype: int\n\t",
			want: model.Docstring{
				Summary: "Summary for this one.",
				OutputParams: []model.OutputParam{
					{Name: "out", Type: "int", Description: "Some output."},
				},
			},
		},
		{
			name: "only exceptions",
			text: "\n\tException function.\n\n\t:raises ValueError: If value is wrong.\n\t",
			want: model.Docstring{
				Summary:    "Exception function.",
				Exceptions: map[string]string{"ValueError": "If value is wrong."},
			},
		},
		{
			name: "params without type",
			text: `
	Function without types.

	:param a: Description for a.
	:param b: Description for b.
	`,
			want: model.Docstring{
				Summary: "Function without types.",
				InputParams: []model.InputParam{
					{Name: "a", Positional: true, Description: "Description for a."},
					{Name: "b", Positional: true, Description: "Description for b."},
				},
			},
		},
		{
			name: "multiple exceptions",
			text: `
	Function with multiple exceptions.

	:raises ValueError: If value is wrong.
	:raises TypeError: If type is wrong.
	`,
			want: model.Docstring{
				Summary: "Function with multiple exceptions.",
				Exceptions: map[string]string{
					"ValueError": "If value is wrong.",
					"TypeError":  "If type is wrong.",
				},
			},
		},
		{
			name: "no summary",
			text: "\n\t:param a: Description for a.\n\t:param b: Description for b.\n\t",
			want: model.Docstring{
				InputParams: []model.InputParam{
					{Name: "a", Positional: true, Description: "Description for a."},
					{Name: "b", Positional: true, Description: "Description for b."},
				},
			},
		},
		{
			name: "multiline descriptions",
			text: `
	Function with multiline descriptions.
	Even the summary is multiline.

	:param a: Description for a.
	    This continues.
	:param b: Description for b.

	:return: Some output.
	    This continues.
	:rtype: int

	:raises ValueError: If value is wrong.
	    This explains why.

	:raises TypeError: If type is wrong.
	`,
			want: model.Docstring{
				Summary: "Function with multiline descriptions. Even the summary is multiline.",
				InputParams: []model.InputParam{
					{Name: "a", Positional: true, Description: "Description for a. This continues."},
					{Name: "b", Positional: true, Description: "Description for b."},
				},
				OutputParams: []model.OutputParam{
					{Name: "out", Type: "int", Description: "Some output. This continues."},
				},
				Exceptions: map[string]string{
					"ValueError": "If value is wrong. This explains why.",
					"TypeError":  "If type is wrong.",
				},
			},
		},
	}
}

func googleScenarios() []scenario {
	return []scenario{
		{
			name: "basic",
			text: `
	A basic function.

	Args:
	    a (int, optional): The first parameter, defaults to "1".
	    b (str): The second parameter.

	Raises:
	    ValueError: When something is wrong.

	Returns:
	    str: A string representation.
	`,
			want: basicWant(),
		},
		{
			name: "only params",
			text: `
	Summary here.

	Args:
	    a (int): Description for a.
	    b (int, optional): b is an optional integer.
	`,
			want: model.Docstring{
				Summary: "Summary here.",
				InputParams: []model.InputParam{
					{Name: "a", Type: "int", Positional: true, Description: "Description for a."},
					{Name: "b", Type: "int", Optional: true, Description: "b is an optional integer."},
				},
			},
		},
		{
			name: "only return",
			text: "\n\tSummary for this one.\n\n\tReturns:\n\t    int: Some output.\n\t",
			want: model.Docstring{
				Summary: "Summary for this one.",
				OutputParams: []model.OutputParam{
					{Name: "out", Type: "int", Description: "Some output."},
				},
			},
		},
		{
			name: "only exceptions",
			text: "\n\tException function.\n\n\tRaises:\n\t    ValueError: If value is wrong.\n\t",
			want: model.Docstring{
				Summary:    "Exception function.",
				Exceptions: map[string]string{"ValueError": "If value is wrong."},
			},
		},
		{
			name: "params without type",
			text: `
	Function without types.

	Args:
	    a: Description for a.
	    b: Description for b.
	`,
			want: model.Docstring{
				Summary: "Function without types.",
				InputParams: []model.InputParam{
					{Name: "a", Positional: true, Description: "Description for a."},
					{Name: "b", Positional: true, Description: "Description for b."},
				},
			},
		},
		{
			name: "multiline descriptions",
			text: `
	Function with multiline descriptions.
	Even the summary is multiline.

	Args:
	    a: Description for a.
	        This continues.
	    b: Description for b.

	Returns:
	    int: Some output.
	        This continues.

	Raises:
	    ValueError: If value is wrong.
	        This explains why.
	    TypeError: If type is wrong.
	`,
			want: model.Docstring{
				Summary: "Function with multiline descriptions. Even the summary is multiline.",
				InputParams: []model.InputParam{
					{Name: "a", Positional: true, Description: "Description for a. This continues."},
					{Name: "b", Positional: true, Description: "Description for b."},
				},
				OutputParams: []model.OutputParam{
					{Name: "out", Type: "int", Description: "Some output. This continues."},
				},
				Exceptions: map[string]string{
					"ValueError": "If value is wrong. This explains why.",
					"TypeError":  "If type is wrong.",
				},
			},
		},
	}
}

func numpyScenarios() []scenario {
	return []scenario{
		{
			name: "basic",
			text: `
	A basic function.

	Parameters
	----------
	a : int, optional
	    The first parameter, defaults to '1'.
	b : str
	    The second parameter.

	Raises
	------
	ValueError
	    When something is wrong.

	Returns
	-------
	out : str
	    A string representation.
	`,
			want: basicWant(),
		},
		{
			name: "shared type and description",
			text: `
	Pair function.

	Parameters
	----------
	x, y : float
	    Coordinates.
	`,
			want: model.Docstring{
				Summary: "Pair function.",
				InputParams: []model.InputParam{
					{Name: "x", Type: "float", Positional: true, Description: "Coordinates."},
					{Name: "y", Type: "float", Positional: true, Description: "Coordinates."},
				},
			},
		},
		{
			name: "unnamed return",
			text: `
	Length function.

	Returns
	-------
	int
	    The length.
	`,
			want: model.Docstring{
				Summary: "Length function.",
				OutputParams: []model.OutputParam{
					{Name: "out", Type: "int", Description: "The length."},
				},
			},
		},
	}
}

// ============================================================
// Dialect parser scenario suites
// ============================================================

func TestParseREST(t *testing.T) {
	checkScenarios(t, ParseREST, restScenarios())
}

func TestParseGoogle(t *testing.T) {
	checkScenarios(t, ParseGoogle, googleScenarios())
}

func TestParseNumpy(t *testing.T) {
	checkScenarios(t, ParseNumpy, numpyScenarios())
}

func TestParseAutoDetectsREST(t *testing.T) {
	checkScenarios(t, parseAlways, restScenarios())
}

func TestParseAutoDetectsGoogle(t *testing.T) {
	checkScenarios(t, parseAlways, googleScenarios())
}

func TestParseAutoDetectsNumpy(t *testing.T) {
	checkScenarios(t, parseAlways, numpyScenarios())
}

// ============================================================
// Selector
// ============================================================

func TestSelect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Dialect
	}{
		{"param marker", ":param a: x", DialectREST},
		{"raises marker", "Does things.\n:raises ValueError: bad", DialectREST},
		{"return marker", ":return: a thing", DialectREST},
		{"numpy underline", "Sum.\n\nParameters\n----------\na : int\n    A.", DialectNumpy},
		{"google typed", "Sum.\n\nArgs:\n    a (int): A.", DialectGoogle},
		{"google bare", "Sum.\n\nArgs:\n    a: A.", DialectGoogle},
		{"plain prose", "Just a summary without fields", DialectNone},
		{"empty", "", DialectNone},
	}
	for _, tc := range cases {
		if got := Select(tc.text); got != tc.want {
			t.Errorf("%s: Select = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// ============================================================
// Fallback and error behavior
// ============================================================

func TestParseFallsBackToSummaryOnly(t *testing.T) {
	text := "Nothing structured here.\nJust words."
	got := Parse(text)
	if got.Summary != strings.TrimSpace(text) {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Original != text {
		t.Error("original text must be preserved verbatim")
	}
	if len(got.InputParams) != 0 || len(got.OutputParams) != 0 || len(got.Exceptions) != 0 {
		t.Error("fallback record must carry no structured fields")
	}
}

func TestParsePreservesOriginalOnGrammarError(t *testing.T) {
	// ":type" without any declared parameter is a grammar error; the
	// dialect entry point surfaces it while Parse degrades.
	text := ":type a: int"
	if _, err := ParseREST(text); !errors.Is(err, ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}
	got := Parse(text)
	if got.Original != text || got.Summary != text {
		t.Errorf("degraded record should keep full text, got %#v", got)
	}
}

func TestParseRESTUndeclaredTypeParam(t *testing.T) {
	_, err := ParseREST(":param a: A.\n:type b: int")
	if !errors.Is(err, ErrMalformedField) {
		t.Errorf("type field for undeclared parameter should fail, got %v", err)
	}
}

func TestParseRESTUnknownField(t *testing.T) {
	var unknown *UnknownSectionError
	_, err := ParseREST(":param a: A.\n:frobnicates b: badly")
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownSectionError, got %v", err)
	}
}

func TestParseRESTMalformedRaises(t *testing.T) {
	_, err := ParseREST(":raises !!!")
	if !errors.Is(err, ErrMalformedField) {
		t.Errorf("expected ErrMalformedField, got %v", err)
	}
}

func TestUnresolvedTypeFragmentIsTolerated(t *testing.T) {
	got, err := ParseREST(":param a: A thing.\n:type a: SomeUnknownType")
	if err != nil {
		t.Fatalf("unresolved type fragment must not abort the parse: %v", err)
	}
	if got.InputParams[0].Type != "" {
		t.Errorf("type should stay unset, got %q", got.InputParams[0].Type)
	}
}

// ============================================================
// Normalizer behavior
// ============================================================

func TestNormalizerDefaultExtraction(t *testing.T) {
	cases := []struct {
		name string
		text string
		want any
	}{
		{"backquoted", "Args:\n    a (str): A value, defaults to `abc`.", "abc"},
		{"single quoted", "Args:\n    a (str): A value, defaults to 'abc'.", "abc"},
		{"double quoted", "Args:\n    a (str): A value, defaults to \"abc\".", "abc"},
		{"bare token", "Args:\n    a (int): A value, defaults to 42.", 42},
		{"float coercion", "Args:\n    a (float): A value, defaults to '1.5'.", 1.5},
		{"bool coercion", "Args:\n    a (bool): A value, defaults to True.", true},
	}
	for _, tc := range cases {
		got, err := ParseGoogle(tc.text)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		p := got.InputParams[0]
		if !p.HasDefault || !reflect.DeepEqual(p.Default, tc.want) {
			t.Errorf("%s: default = %#v (has=%v), want %#v", tc.name, p.Default, p.HasDefault, tc.want)
		}
		if strings.Contains(p.Description, "defaults to") {
			t.Errorf("%s: clause not stripped from %q", tc.name, p.Description)
		}
		if p.Description != "A value." {
			t.Errorf("%s: description = %q", tc.name, p.Description)
		}
	}
}

func TestNormalizerInfersFlags(t *testing.T) {
	// A parameter carrying a default but no explicit optional/positional
	// flag is always keyword-optional after normalization.
	got, err := ParseNumpy("Parameters\n----------\na : int\n    A value, defaults to 3.\n")
	if err != nil {
		t.Fatal(err)
	}
	p := got.InputParams[0]
	if !p.Optional || p.Positional {
		t.Errorf("want optional=true positional=false, got optional=%v positional=%v", p.Optional, p.Positional)
	}
}

func TestNormalizerPunctuation(t *testing.T) {
	got, err := ParseGoogle("Args:\n    a (int): Has  stray , spacing")
	if err != nil {
		t.Fatal(err)
	}
	if d := got.InputParams[0].Description; d != "Has stray, spacing." {
		t.Errorf("description = %q", d)
	}
}

func TestNormalizerDropsEmptyDescriptions(t *testing.T) {
	got, err := ParseGoogle("Args:\n    a (int):")
	if err != nil {
		t.Fatal(err)
	}
	if got.InputParams[0].Description != "" {
		t.Errorf("empty description should be dropped, got %q", got.InputParams[0].Description)
	}
}

func TestNormalizerOutputNaming(t *testing.T) {
	got, err := ParseNumpy("Returns\n-------\nint\n    First.\nstr\n    Second.\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.OutputParams) != 2 {
		t.Fatalf("want 2 outputs, got %d", len(got.OutputParams))
	}
	if got.OutputParams[0].Name != "out0" || got.OutputParams[1].Name != "out1" {
		t.Errorf("output names = %q, %q", got.OutputParams[0].Name, got.OutputParams[1].Name)
	}
}

// ============================================================
// Idempotence
// ============================================================

func TestParseIsIdempotent(t *testing.T) {
	text := restScenarios()[0].text
	first := Parse(text)
	second := Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same docstring twice must yield identical records")
	}
}
