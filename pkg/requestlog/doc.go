// Package requestlog records the requests a stub server or transport has
// handled, so tests and users can inspect which stubs were hit.
//
// It is distinct from operational logging, which uses log/slog.
//
//	journal := requestlog.NewMemoryStore(1000)
//	handler.SetRequestLog(journal)
//	...
//	n := journal.CountByStubID("create-order")
package requestlog
