package expose_test

import (
	"fmt"
	"log"

	"github.com/jonwraymond/toolexpose/expose"
	"github.com/jonwraymond/toolexpose/signature"
)

func ExampleWrapFunc() {
	scale := func(value, factor int) int { return value * factor }

	m, err := expose.WrapFunc(scale, []signature.Option{
		signature.WithName("scale"),
		signature.WithParamNames("value", "factor"),
		signature.WithDefault("factor", 2),
		signature.WithDoc("Scales a value.\n\n" +
			":param value: The input value.\n" +
			":param factor: The multiplier, defaults to 2.\n" +
			":return: The scaled value.\n" +
			":rtype: int"),
	})
	if err != nil {
		log.Fatal(err)
	}

	rec := m.Record()
	fmt.Println(rec.Name)
	fmt.Println(rec.Docstring.Summary)
	for _, p := range rec.InputParams {
		fmt.Printf("%s %s positional=%v\n", p.Name, p.Type, p.Positional)
	}
	for _, o := range rec.OutputParams {
		fmt.Printf("%s %s %s\n", o.Name, o.Type, o.Description)
	}

	// Output:
	// scale
	// Scales a value.
	// value int positional=true
	// factor int positional=false
	// out int The scaled value.
}

func ExampleGroup() {
	g := expose.NewGroup()

	add := func(a, b int) int { return a + b }
	m, err := expose.WrapFunc(add, []signature.Option{
		signature.WithName("add"),
		signature.WithParamNames("a", "b"),
	})
	if err != nil {
		log.Fatal(err)
	}
	name, err := g.Add(m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(name, len(g.List()))

	// Output:
	// add 1
}
