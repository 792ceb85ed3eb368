package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailcheck/pkg/logger"
	"github.com/dmitrymomot/emailcheck/pkg/validator"
)

const addressField = "address"

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check ADDRESS...",
		Short: "Check the syntax of each address",
		Long: "Check reports, for every argument, whether it has the shape local@host.tld\n" +
			"with no whitespace or extra '@'. It exits with status 1 if any address is invalid.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			report := Report{Command: "check", Total: len(args), Valid: []string{}}

			for _, addr := range args {
				res := evaluate(addr,
					validator.Required(addressField, addr),
					validator.EmailFormat(addressField, addr),
				)
				if res.Valid {
					report.Valid = append(report.Valid, addr)
				} else {
					a.log.DebugContext(cmd.Context(), "address rejected", logger.Email(addr))
				}
				report.Results = append(report.Results, res)
			}

			return a.finish(cmd.Context(), cmd, report, start)
		},
	}
}

// evaluate applies rules to addr and collects the failure messages.
func evaluate(addr string, rules ...validator.Rule) Result {
	res := Result{Address: addr, Valid: true}
	if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); verrs != nil {
		res.Valid = false
		res.Reasons = verrs.Get(addressField)
	}
	return res
}

// finish logs the summary, writes the report and maps rejections to
// ErrInvalidAddresses.
func (a *app) finish(ctx context.Context, cmd *cobra.Command, report Report, start time.Time) error {
	a.log.InfoContext(ctx, report.Command+" complete",
		logger.Component(report.Command),
		logger.Count(report.Total),
		logger.Valid(len(report.Valid)),
		logger.Invalid(report.Invalid()),
		logger.Duration(time.Since(start)),
	)

	if err := writeReport(cmd.OutOrStdout(), a.output, report); err != nil {
		a.log.ErrorContext(ctx, "write report", logger.Error(err))
		return err
	}

	if report.Command != "filter" && report.Invalid() > 0 {
		return ErrInvalidAddresses
	}
	return nil
}
