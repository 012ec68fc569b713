// Package stub pairs body matchers with canned responses.
//
// A Stub describes a request (method, URL, headers and body) and the
// response to return when a request like it is seen. Stubs live in a
// Registry, which resolves an incoming request to the first registered stub
// whose request description matches it.
//
// Two adapters put a registry to work:
//
//   - Transport is an http.RoundTripper that answers outbound requests made
//     through an http.Client from the registry
//   - Handler is an http.Handler that answers inbound requests
//
// # Usage
//
//	reg := stub.NewRegistry()
//	s, err := stub.NewBuilder().
//	    Method(http.MethodPost).
//	    URL("https://api.example.com/orders").
//	    Body(matcher.NewJSON(Order{ID: 1})).
//	    Respond(http.StatusCreated).
//	    WithBody([]byte(`{"ok":true}`)).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	reg.Add(s)
//
//	restore := stub.NewTransport(reg).Intercept(client)
//	defer restore()
//
// Adding a stub whose request is equal to one already registered replaces
// the existing stub in place, so re-registering a rule never duplicates it.
package stub
