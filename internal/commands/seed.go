package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// seedFile is the shape of a directory seed file. Any format viper reads works (YAML, JSON, TOML).
type seedFile struct {
	Accounts []struct {
		ID     string `mapstructure:"id"`
		Name   string `mapstructure:"name"`
		Type   string `mapstructure:"type"`
		Parent string `mapstructure:"parent"`
	} `mapstructure:"accounts"`
	Payees []struct {
		ID   string `mapstructure:"id"`
		Name string `mapstructure:"name"`
	} `mapstructure:"payees"`
}

// loadSeedFile reads path into domain records owned by companyID.
func loadSeedFile(path, companyID string) ([]domain.Account, []domain.Payee, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, nil, fmt.Errorf("decode seed file: %w", err)
	}

	accounts := make([]domain.Account, 0, len(f.Accounts))
	for i, a := range f.Accounts {
		if a.ID == "" {
			return nil, nil, fmt.Errorf("account %d has no id", i)
		}
		accounts = append(accounts, domain.Account{
			AccountID:       a.ID,
			CompanyID:       companyID,
			Name:            a.Name,
			AccountType:     domain.AccountType(a.Type),
			ParentAccountID: a.Parent,
		})
	}
	accounts, err := parentsFirst(accounts)
	if err != nil {
		return nil, nil, err
	}

	payees := make([]domain.Payee, 0, len(f.Payees))
	for i, p := range f.Payees {
		if p.ID == "" {
			return nil, nil, fmt.Errorf("payee %d has no id", i)
		}
		payees = append(payees, domain.Payee{PayeeID: p.ID, CompanyID: companyID, Name: p.Name})
	}
	return accounts, payees, nil
}

// parentsFirst reorders accounts so every parent defined in the file is saved before its
// children. Parents outside the file are left for the store to check.
func parentsFirst(accounts []domain.Account) ([]domain.Account, error) {
	inFile := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		inFile[a.AccountID] = true
	}
	done := make(map[string]bool, len(accounts))
	ordered := make([]domain.Account, 0, len(accounts))
	for len(ordered) < len(accounts) {
		progressed := false
		for _, a := range accounts {
			if done[a.AccountID] {
				continue
			}
			if a.ParentAccountID == "" || !inFile[a.ParentAccountID] || done[a.ParentAccountID] {
				ordered = append(ordered, a)
				done[a.AccountID] = true
				progressed = true
			}
		}
		if !progressed {
			return nil, errors.New("seed file has a cycle in account parents")
		}
	}
	return ordered, nil
}

func newSeedCommand() *cobra.Command {
	var companyID, file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a company's chart of accounts and payees from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID == "" {
				return errors.New("--company is required")
			}
			accounts, payees, err := loadSeedFile(file, companyID)
			if err != nil {
				return err
			}

			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, a := range accounts {
				if err := s.backend.Directory.SaveAccount(s.ctx, a); err != nil {
					return fmt.Errorf("account %s: %w", a.AccountID, err)
				}
			}
			for _, p := range payees {
				if err := s.backend.Directory.SavePayee(s.ctx, p); err != nil {
					return fmt.Errorf("payee %s: %w", p.PayeeID, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d accounts and %d payees for %s\n", len(accounts), len(payees), companyID)
			return nil
		},
	}
	addCompanyFlag(cmd, &companyID)
	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (YAML, JSON or TOML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
