// Package stubtest provides helpers for using stubs in Go tests.
//
// A Server wraps an httptest.Server answering from a stub registry and
// records every request it handles:
//
//	func TestClient(t *testing.T) {
//	    srv := stubtest.New(t)
//	    srv.Stub(stub.NewBuilder().
//	        ID("create-order").
//	        Method("POST").
//	        URL(srv.URL() + "/orders").
//	        Body(matcher.NewJSON(Order{ID: 1})).
//	        Respond(201))
//
//	    // exercise code that calls srv.URL() ...
//
//	    srv.AssertCalledTimes(t, "create-order", 1)
//	    srv.AssertAllMatched(t)
//	}
//
// Client returns an *http.Client whose requests never leave the process,
// which suits code that talks to fixed external hosts:
//
//	client := srv.Client()
//	resp, err := client.Get("https://api.example.com/orders/1")
package stubtest
