package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errDrift makes verify exit non-zero so it can gate scripts.
var errDrift = errors.New("journal drift detected")

func newVerifyCommand() *cobra.Command {
	var companyID string
	var repair bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare stored journal lines with a fresh derivation of every confirmed transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID == "" {
				return errors.New("--company is required")
			}
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			report, err := s.services.Journal.VerifyJournal(s.ctx, companyID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scanned %d transactions and %d lines\n", report.TransactionsScanned, report.LinesScanned)
			if len(report.Drift) == 0 {
				fmt.Fprintln(out, "journal is consistent")
				return nil
			}
			for _, d := range report.Drift {
				fmt.Fprintf(out, "  %s: %s\n", d.TransactionID, d.Reason)
			}
			if !repair {
				return fmt.Errorf("%w: %d transactions", errDrift, len(report.Drift))
			}

			result, err := s.services.Journal.ResyncJournal(s.ctx, companyID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "repaired: %d lines written\n", result.LinesInserted)
			return nil
		},
	}
	addCompanyFlag(cmd, &companyID)
	cmd.Flags().BoolVar(&repair, "repair", false, "resync the journal when drift is found")

	return cmd
}
