package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jonwraymond/toolexpose/model"
	"github.com/jonwraymond/toolexpose/signature"
)

func mustParse(t *testing.T, c signature.Callable) model.SerializedFunction {
	t.Helper()
	rec, err := ParseFunction(c)
	if err != nil {
		t.Fatalf("ParseFunction failed: %v", err)
	}
	return rec
}

func callable(t *testing.T, fn any, opts ...signature.Option) signature.Callable {
	t.Helper()
	c, err := signature.FromFunc(fn, opts...)
	if err != nil {
		t.Fatalf("FromFunc failed: %v", err)
	}
	return c
}

// ============================================================
// Basic merging
// ============================================================

func TestParseFunctionSimple(t *testing.T) {
	c := callable(t,
		func(a int, b string) (int, string) { return a, b },
		signature.WithName("example_function"),
		signature.WithParamNames("a", "b"),
		signature.WithDefault("b", "default"),
		signature.WithDoc("This is an example function."),
	)
	rec := mustParse(t, c)

	want := model.SerializedFunction{
		Name: "example_function",
		InputParams: []model.InputParam{
			{Name: "a", Type: "int", Positional: true},
			{Name: "b", Type: "str", Positional: false, Optional: true,
				Default: "default", HasDefault: true},
		},
		OutputParams: []model.OutputParam{
			{Name: "out0", Type: "int"},
			{Name: "out1", Type: "str"},
		},
		Docstring: &model.Docstring{
			Summary:      "This is an example function.",
			InputParams:  []model.InputParam{},
			OutputParams: []model.OutputParam{},
			Exceptions:   map[string]string{},
			Original:     "This is an example function.",
		},
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("record:\n got %#v\nwant %#v", rec, want)
	}
}

func TestParseFunctionNoDoc(t *testing.T) {
	c := callable(t, func(a int) int { return a },
		signature.WithName("ident"), signature.WithParamNames("a"))
	rec := mustParse(t, c)
	if rec.Docstring != nil {
		t.Error("no doc text should leave the docstring record absent")
	}
	want := []model.OutputParam{{Name: "out", Type: "int"}}
	if !reflect.DeepEqual(rec.OutputParams, want) {
		t.Errorf("outputs = %#v", rec.OutputParams)
	}
}

func TestParseFunctionUntypedParams(t *testing.T) {
	c := callable(t, func(a, b any) {}, signature.WithName("no_hints"),
		signature.WithParamNames("a", "b"))
	rec := mustParse(t, c)
	want := []model.InputParam{
		{Name: "a", Type: "Any", Positional: true},
		{Name: "b", Type: "Any", Positional: true},
	}
	if !reflect.DeepEqual(rec.InputParams, want) {
		t.Errorf("inputs = %#v", rec.InputParams)
	}
	if len(rec.OutputParams) != 0 {
		t.Errorf("outputs = %#v", rec.OutputParams)
	}
}

// ============================================================
// Output synthesis
// ============================================================

func TestParseFunctionNothingReturned(t *testing.T) {
	// A sole error return is the exception channel, not a value; the
	// docstring's Returns section cannot resurrect an output.
	c := callable(t, func() error { return nil },
		signature.WithName("returns_none"),
		signature.WithDoc(":return: Ghost output.\n:rtype: int"))
	rec := mustParse(t, c)
	if len(rec.OutputParams) != 0 {
		t.Errorf("outputs = %#v", rec.OutputParams)
	}
	if len(rec.Docstring.OutputParams) != 1 {
		t.Error("the docstring record keeps its own outputs for traceability")
	}
}

func TestParseFunctionTrailingError(t *testing.T) {
	c := callable(t, func() (string, error) { return "", nil },
		signature.WithName("fetch"))
	rec := mustParse(t, c)
	want := []model.OutputParam{{Name: "out", Type: "str"}}
	if !reflect.DeepEqual(rec.OutputParams, want) {
		t.Errorf("outputs = %#v", rec.OutputParams)
	}
}

func TestParseFunctionDocstringOutputsWin(t *testing.T) {
	c := callable(t, func() string { return "" },
		signature.WithName("render"),
		signature.WithDoc("Renders.\n\n:return: A string representation.\n:rtype: str"))
	rec := mustParse(t, c)
	want := []model.OutputParam{
		{Name: "out", Type: "str", Description: "A string representation."},
	}
	if !reflect.DeepEqual(rec.OutputParams, want) {
		t.Errorf("outputs = %#v", rec.OutputParams)
	}
}

// ============================================================
// Docstring merging
// ============================================================

func TestParseFunctionParamFromDocstring(t *testing.T) {
	doc := "Args:\n" +
		"    a (int): This is an integer.\n" +
		"    b (int, optional): This is an optional integer.\n"
	c := callable(t, func(a any, b any) {},
		signature.WithName("docstring_type"),
		signature.WithParamNames("a", "b"),
		signature.WithDefault("b", 1),
		signature.WithDoc(doc))
	rec := mustParse(t, c)

	want := []model.InputParam{
		{Name: "a", Type: "int", Positional: true, Optional: false,
			Description: "This is an integer."},
		{Name: "b", Type: "int", Positional: false, Optional: true,
			Default: 1, HasDefault: true,
			Description: "This is an optional integer."},
	}
	if !reflect.DeepEqual(rec.InputParams, want) {
		t.Errorf("inputs:\n got %#v\nwant %#v", rec.InputParams, want)
	}

	// The nested record keeps the docstring's own view.
	if rec.Docstring.InputParams[1].HasDefault {
		t.Error("the docstring itself declared no default for b")
	}
}

func TestParseFunctionTypeDisagreement(t *testing.T) {
	c := callable(t, func(a int) {},
		signature.WithName("typed"),
		signature.WithParamNames("a"),
		signature.WithDoc(":param a: A number.\n:type a: float"))
	rec := mustParse(t, c)
	if rec.InputParams[0].Type != "int" {
		t.Errorf("top-level type = %q, want the annotation's", rec.InputParams[0].Type)
	}
	if rec.Docstring.InputParams[0].Type != "float" {
		t.Errorf("docstring type = %q, want the docstring's own", rec.Docstring.InputParams[0].Type)
	}
}

func TestParseFunctionAdoptsDocstringNames(t *testing.T) {
	doc := "Args:\n" +
		"    width (int): The width.\n" +
		"    height (int): The height.\n"
	c := callable(t, func(a, b int) int { return a * b },
		signature.WithName("area"), signature.WithDoc(doc))
	rec := mustParse(t, c)
	if rec.InputParams[0].Name != "width" || rec.InputParams[1].Name != "height" {
		t.Errorf("names = %q, %q", rec.InputParams[0].Name, rec.InputParams[1].Name)
	}
	if rec.InputParams[0].Description != "The width." {
		t.Errorf("description = %q", rec.InputParams[0].Description)
	}
}

func TestParseFunctionKeepsSyntheticNamesWhenDocIncomplete(t *testing.T) {
	c := callable(t, func(a, b int) {},
		signature.WithName("partial_doc"),
		signature.WithDoc("Args:\n    only (int): Just one documented.\n"))
	rec := mustParse(t, c)
	if rec.InputParams[0].Name != "arg0" || rec.InputParams[1].Name != "arg1" {
		t.Errorf("names = %q, %q", rec.InputParams[0].Name, rec.InputParams[1].Name)
	}
}

func TestParseFunctionDocstringDefaultFills(t *testing.T) {
	c := callable(t, func(a int) {},
		signature.WithName("defaulted"),
		signature.WithParamNames("a"),
		signature.WithDoc(":param a: A value, defaults to 3\n:type a: int, optional"))
	rec := mustParse(t, c)
	p := rec.InputParams[0]
	if !p.HasDefault || p.Default != 3 {
		t.Errorf("default = %#v (has=%v)", p.Default, p.HasDefault)
	}
	if p.Positional || !p.Optional {
		t.Errorf("flags = positional %v optional %v", p.Positional, p.Optional)
	}
}

// ============================================================
// Hard failures
// ============================================================

func TestParseFunctionUnserializableDefault(t *testing.T) {
	c := callable(t, func(cb any) {},
		signature.WithName("unserializable_default"),
		signature.WithParamNames("cb"),
		signature.WithDefault("cb", func() {}))
	_, err := ParseFunction(c)
	var perr *FunctionParamError
	if !errors.As(err, &perr) {
		t.Fatalf("expected FunctionParamError, got %v", err)
	}
	if perr.Param != "cb" {
		t.Errorf("param = %q", perr.Param)
	}
}

// ============================================================
// Partial application flows through
// ============================================================

func TestParseFunctionOfPartial(t *testing.T) {
	base := callable(t, func(a, b int) int { return a + b },
		signature.WithName("add"), signature.WithParamNames("a", "b"))
	p, err := signature.Partial(base, 1)
	if err != nil {
		t.Fatal(err)
	}
	rec := mustParse(t, p)
	if len(rec.InputParams) != 1 || rec.InputParams[0].Name != "b" {
		t.Errorf("inputs = %#v", rec.InputParams)
	}
	if rec.Name != "add" {
		t.Errorf("name = %q", rec.Name)
	}
}
