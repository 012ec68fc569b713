package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/stubd/pkg/cli/internal/output"
	"github.com/getmockd/stubd/pkg/matcher"
	"github.com/getmockd/stubd/pkg/stub"
)

type validateResult struct {
	File  string        `json:"file"`
	Valid bool          `json:"valid"`
	Stubs []stubSummary `json:"stubs"`
}

type stubSummary struct {
	ID     string `json:"id"`
	Method string `json:"method,omitempty"`
	URL    string `json:"url"`
	Body   string `json:"body,omitempty"`
	Status int    `json:"status"`
}

func summarize(s *stub.Stub) stubSummary {
	sum := stubSummary{
		ID:     s.ID,
		Method: s.Request.Method,
		URL:    urlText(s.Request.URL),
		Status: s.Response.Status(),
	}
	if s.Request.Body != nil {
		sum.Body = s.Request.Body.String()
	}
	return sum
}

// urlText shows literal URLs as-is and patterns with a "~" prefix.
func urlText(m matcher.Matcher) string {
	switch u := m.(type) {
	case *matcher.StringMatcher:
		return u.Value()
	case *matcher.RegexMatcher:
		if re := u.Regexp(); re != nil {
			return "~" + re.String()
		}
		return u.String()
	case nil:
		return ""
	default:
		return u.String()
	}
}

func newValidateCommand(g *globalFlags) *cobra.Command {
	var (
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a stub file without serving it",
		Example: `  stubd validate -f stubs.yaml
  stubd validate -f stubs.json --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := loadRegistry(file, g.logger(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result := validateResult{File: file, Valid: true}
			for _, s := range reg.List() {
				result.Stubs = append(result.Stubs, summarize(s))
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return output.JSON(out, result)
			}

			tw := output.Table(out)
			fmt.Fprintln(tw, "ID\tMETHOD\tURL\tBODY\tSTATUS")
			for _, s := range result.Stubs {
				method := s.Method
				if method == "" {
					method = "*"
				}
				body := s.Body
				if body == "" {
					body = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.ID, method, s.URL, body, s.Status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s: %d stubs OK\n", file, len(result.Stubs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Stub file (YAML or JSON)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
