package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/getmockd/stubd/pkg/cli/internal/output"
	"github.com/getmockd/stubd/pkg/config"
	"github.com/getmockd/stubd/pkg/logging"
	"github.com/getmockd/stubd/pkg/stub"
)

// loadRegistry loads a stub file into a fresh registry. Stubs that repeat
// an earlier request description replace it, with a warning.
func loadRegistry(path string, log *slog.Logger, warn io.Writer) (*stub.Registry, error) {
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	stubs, err := f.Build()
	if err != nil {
		return nil, err
	}

	reg := stub.NewRegistry()
	reg.SetLogger(logging.Component(log, "registry"))
	for _, s := range stubs {
		replaced, err := reg.Add(s)
		if err != nil {
			return nil, fmt.Errorf("stub %q: %w", s.ID, err)
		}
		if replaced {
			output.Warn(warn, "stub %q repeats an earlier request and replaces it", s.ID)
		}
	}
	return reg, nil
}
