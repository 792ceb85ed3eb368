package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailcheck/pkg/emailvalidator"
	"github.com/dmitrymomot/emailcheck/pkg/logger"
)

const stdinName = "-"

func (a *app) filterCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "filter [FILE]",
		Short: "Print only the valid addresses of a list",
		Long: "Filter reads candidates from FILE, or from stdin when FILE is omitted or \"-\",\n" +
			"and prints the valid ones in their original order. FILE may hold one address\n" +
			"per line, a JSON array or a YAML sequence; the format follows the extension\n" +
			"unless --input is given. A document that is not a list yields no output.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseInputFormat(input)
			if err != nil {
				return err
			}

			path := stdinName
			if len(args) == 1 {
				path = args[0]
			}

			ctx := context.WithValue(cmd.Context(), inputKey{}, path)
			start := time.Now()

			doc, err := a.readCandidates(cmd, path, detectInputFormat(format, path))
			if err != nil {
				a.log.ErrorContext(ctx, "read candidates", logger.Error(err))
				return err
			}

			report := Report{
				Command: "filter",
				Total:   sequenceLen(doc),
				Valid:   emailvalidator.ValidateList(doc),
			}

			return a.finish(ctx, cmd, report, start)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input format: lines, json or yaml (default from file extension)")
	return cmd
}

func (a *app) readCandidates(cmd *cobra.Command, path string, format InputFormat) (any, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != stdinName {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Join(ErrReadInput, err)
		}
		defer f.Close()
		r = f
	}

	doc, err := decodeCandidates(r, format)
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}
	return doc, nil
}

func sequenceLen(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0
	}
	return rv.Len()
}
