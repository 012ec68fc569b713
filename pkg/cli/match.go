package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/stubd/pkg/cli/internal/output"
	"github.com/getmockd/stubd/pkg/stub"
)

type matchFlags struct {
	file       string
	method     string
	url        string
	headers    []string
	body       string
	bodyFile   string
	jsonOutput bool
}

type matchResult struct {
	Matched bool         `json:"matched"`
	Method  string       `json:"method"`
	URL     string       `json:"url"`
	Stub    *stubSummary `json:"stub,omitempty"`
}

func newMatchCommand(g *globalFlags) *cobra.Command {
	var f matchFlags

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Report which stub a request would hit",
		Example: `  stubd match -f stubs.yaml --method POST --url https://api.example.com/orders \
    -H 'Content-Type: application/json' --body '{"id":1,"name":"a"}'

  stubd match -f stubs.yaml --url https://api.example.com/upload --body-file payload.bin --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.incoming()
			if err != nil {
				return err
			}
			reg, err := loadRegistry(f.file, g.logger(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result := matchResult{Method: in.Method, URL: in.URL}
			if s, ok := reg.Match(in); ok {
				sum := summarize(s)
				result.Matched = true
				result.Stub = &sum
			}

			out := cmd.OutOrStdout()
			if f.jsonOutput {
				if err := output.JSON(out, result); err != nil {
					return err
				}
			} else if result.Matched {
				fmt.Fprintf(out, "%s %s -> %s (status %d)\n", in.Method, in.URL, result.Stub.ID, result.Stub.Status)
			} else {
				fmt.Fprintf(out, "%s %s -> no match\n", in.Method, in.URL)
			}

			if !result.Matched {
				return stub.ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Stub file (YAML or JSON)")
	cmd.Flags().StringVarP(&f.method, "method", "X", http.MethodGet, "Request method")
	cmd.Flags().StringVar(&f.url, "url", "", "Absolute request URL")
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, "Request header as 'Name: value' (repeatable)")
	cmd.Flags().StringVar(&f.body, "body", "", "Request body")
	cmd.Flags().StringVar(&f.bodyFile, "body-file", "", "Read the request body from a file")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("body", "body-file")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

// incoming builds the request snapshot described by the flags.
func (f *matchFlags) incoming() (*stub.Incoming, error) {
	in := &stub.Incoming{
		Method: strings.ToUpper(f.method),
		URL:    f.url,
		Header: make(http.Header),
	}
	for _, h := range f.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: value'", h)
		}
		in.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	switch {
	case f.bodyFile != "":
		data, err := os.ReadFile(f.bodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		in.Body = data
	case f.body != "":
		in.Body = []byte(f.body)
	}
	return in, nil
}
