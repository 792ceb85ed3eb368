package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailcheck/pkg/logger"
	"github.com/dmitrymomot/emailcheck/pkg/validator"
)

func (a *app) domainCmd() *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "domain --domain DOMAIN ADDRESS...",
		Short: "Check that each address belongs to exactly DOMAIN",
		Long: "Domain accepts an address when it is syntactically valid and ends with\n" +
			"\"@DOMAIN\", ignoring case. Subdomains do not match: user@a.example.com\n" +
			"is not in example.com.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(domain) == "" {
				return ErrMissingDomain
			}

			start := time.Now()
			report := Report{Command: "domain", Domain: domain, Total: len(args), Valid: []string{}}

			for _, addr := range args {
				res := evaluate(addr,
					validator.EmailFormat(addressField, addr),
					validator.EmailDomain(addressField, addr, domain),
				)
				if res.Valid {
					report.Valid = append(report.Valid, addr)
				} else {
					a.log.DebugContext(cmd.Context(), "address outside domain",
						logger.Email(addr), logger.Domain(domain))
				}
				report.Results = append(report.Results, res)
			}

			return a.finish(cmd.Context(), cmd, report, start)
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", a.cfg.Domain, "domain the addresses must belong to (default $EMAILCHECK_DOMAIN)")
	return cmd
}
