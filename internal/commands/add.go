package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/huvudbok-dev/huvudbok/internal/gitops"
	"github.com/huvudbok-dev/huvudbok/internal/model"
)

func newAddCommand() *cobra.Command {
	var (
		dateStr      string
		description  string
		debitCode    string
		creditCode   string
		amountStr    string
		counterparty string
		reference    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a balanced two-row verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := booksDir()
			if err != nil {
				return err
			}

			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount: %w", err)
			}

			b, err := loadBooks(dir)
			if err != nil {
				return err
			}

			v := model.Verification{
				Date:         date,
				Description:  description,
				Counterparty: counterparty,
				Reference:    reference,
				Rows: []model.Row{
					{AccountCode: debitCode, Debit: amount},
					{AccountCode: creditCode, Credit: amount},
				},
			}

			verID, err := b.store.Append(b.journal, v)
			if err != nil {
				return err
			}

			if b.cfg.Git.AutoCommit && gitops.IsRepo(dir) {
				msg := fmt.Sprintf("add: %s %s", verID, description)
				if _, err := gitops.CommitAll(dir, msg, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail); err != nil {
					return fmt.Errorf("committing: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), verID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format("2006-01-02"), "verification date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&debitCode, "debit", "", "debit account code (required)")
	_ = cmd.MarkFlagRequired("debit")
	cmd.Flags().StringVar(&creditCode, "credit", "", "credit account code (required)")
	_ = cmd.MarkFlagRequired("credit")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&counterparty, "counterparty", "", "counterparty")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference")

	return cmd
}
