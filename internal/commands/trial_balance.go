package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newTrialBalanceCommand() *cobra.Command {
	var companyID, asOfStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID == "" {
				return errors.New("--company is required")
			}
			asOf := time.Now().UTC().Truncate(24 * time.Hour)
			if asOfStr != "" {
				parsed, err := time.Parse("2006-01-02", asOfStr)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: %w", asOfStr, err)
				}
				asOf = parsed
			}

			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			tb, err := s.services.Reporting.TrialBalance(s.ctx, companyID, asOf)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(w, "ACCOUNT\tTYPE\tDEBIT\tCREDIT\tBALANCE\t\n")
			for _, r := range tb.Rows {
				name := r.AccountName
				if name == "" {
					name = r.AccountID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", name, r.AccountType, r.Debit, r.Credit, r.Balance)
			}
			fmt.Fprintf(w, "TOTAL\t\t%s\t%s\t\t\n", tb.TotalDebit, tb.TotalCredit)
			return w.Flush()
		},
	}
	addCompanyFlag(cmd, &companyID)
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "report date (YYYY-MM-DD), defaults to today")

	return cmd
}
