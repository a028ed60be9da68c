package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResyncCommand() *cobra.Command {
	var companyID string

	cmd := &cobra.Command{
		Use:   "resync",
		Short: "Delete and rebuild a company's journal from its confirmed transactions",
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

			result, err := s.services.Journal.ResyncJournal(s.ctx, companyID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "resynced %s: %d transactions, %d lines deleted, %d lines written\n",
				result.CompanyID, result.Transactions, result.LinesDeleted, result.LinesInserted)
			return nil
		},
	}
	addCompanyFlag(cmd, &companyID)

	return cmd
}
