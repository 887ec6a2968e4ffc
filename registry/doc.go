// Package registry publishes exposed methods as MCP tools.
//
// Registry converts each registered method's serialized record into a
// toolfoundation model.Tool: the docstring summary becomes the tool
// description and the input parameters become a JSON-schema-flavored
// input schema. Tools can be listed, fetched, and searched by free
// text, and served over MCP JSON-RPC (stdio, HTTP, SSE).
//
// The registry describes callables; it never executes them. A
// tools/call request is answered with a method-not-found error.
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "my-server",
//	        Version: "1.0.0",
//	    },
//	})
//
//	m, _ := expose.WrapFunc(parseCSV, []signature.Option{
//	    signature.WithName("parse_csv"),
//	    signature.WithParamNames("path"),
//	    signature.WithDoc("Parses a csv file.\n\n:param path: The file path.\n:type path: str"),
//	})
//	reg.Register(m, registry.WithNamespace("text"))
//
//	registry.ServeStdio(ctx, reg)
package registry
