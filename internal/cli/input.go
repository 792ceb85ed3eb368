package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// InputFormat selects how filter candidates are decoded.
type InputFormat string

const (
	InputAuto  InputFormat = ""
	InputLines InputFormat = "lines"
	InputJSON  InputFormat = "json"
	InputYAML  InputFormat = "yaml"
)

const maxLineSize = 1 << 20

func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(s)); f {
	case InputAuto, InputLines, InputJSON, InputYAML:
		return f, nil
	case "yml":
		return InputYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInput, s)
}

// detectInputFormat resolves InputAuto from the file extension. Stdin and
// unknown extensions are read as lines.
func detectInputFormat(format InputFormat, path string) InputFormat {
	if format != InputAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return InputJSON
	case ".yaml", ".yml":
		return InputYAML
	}
	return InputLines
}

// decodeCandidates returns the decoded document. JSON and YAML documents are
// returned as decoded, so elements keep their original types and a
// non-sequence document stays a non-sequence.
func decodeCandidates(r io.Reader, format InputFormat) (any, error) {
	switch format {
	case InputJSON:
		var doc any
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		return doc, nil
	case InputYAML:
		var doc any
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		return doc, nil
	default:
		return readLines(r)
	}
}

// readLines returns every non-blank line with its terminator removed.
// Other whitespace is kept, so an indented address stays invalid.
func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
