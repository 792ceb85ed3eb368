package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how a Report is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	case "yml":
		return OutputYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutput, s)
}

// Result is the verdict for one address.
type Result struct {
	Address string   `json:"address" yaml:"address"`
	Valid   bool     `json:"valid" yaml:"valid"`
	Reasons []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Report is the document written by every command.
type Report struct {
	Command string   `json:"command" yaml:"command"`
	Domain  string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	Total   int      `json:"total" yaml:"total"`
	Results []Result `json:"results,omitempty" yaml:"results,omitempty"`
	Valid   []string `json:"valid" yaml:"valid"`
}

// Invalid counts the rejected candidates.
func (r Report) Invalid() int {
	return r.Total - len(r.Valid)
}

func writeReport(w io.Writer, format OutputFormat, r Report) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, r)
	}
}

// writeText prints filtered addresses one per line, or one verdict line per
// checked address.
func writeText(w io.Writer, r Report) error {
	if r.Results == nil {
		for _, addr := range r.Valid {
			if _, err := fmt.Fprintln(w, addr); err != nil {
				return err
			}
		}
		return nil
	}

	for _, res := range r.Results {
		status := "invalid"
		if res.Valid {
			status = "valid"
		}
		line := status + "\t" + res.Address
		if len(res.Reasons) > 0 {
			line += "\t" + strings.Join(res.Reasons, "; ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
