package stub

import (
	"time"

	"github.com/getmockd/stubd/pkg/requestlog"
)

// record writes the outcome of one request to l. A nil l records nothing.
func record(l requestlog.Logger, in *Incoming, start time.Time, s *Stub, status int, err error) {
	if l == nil {
		return
	}
	e := &requestlog.Entry{
		Timestamp:  start,
		Method:     in.Method,
		URL:        in.URL,
		Headers:    in.Header.Clone(),
		Body:       requestlog.TruncateBody(in.Body),
		BodySize:   len(in.Body),
		Status:     status,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if s != nil {
		e.StubID = s.ID
	}
	if err != nil {
		e.Error = err.Error()
	}
	l.Log(e)
}
