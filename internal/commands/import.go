package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huvudbok-dev/huvudbok/internal/gitops"
	"github.com/huvudbok-dev/huvudbok/internal/importer"
	"github.com/huvudbok-dev/huvudbok/internal/postlog"
)

func newImportCommand() *cobra.Command {
	var (
		format         string
		bankAccount    string
		expenseAccount string
		revenueAccount string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Post bank statement CSVs from the import directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := booksDir()
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			b, err := loadBooks(dir)
			if err != nil {
				return err
			}

			if bankAccount == "" && len(b.cfg.BankAccounts) > 0 {
				bankAccount = b.cfg.BankAccounts[0].AccountCode
			}
			if bankAccount == "" {
				return fmt.Errorf("no bank account configured; pass --bank or set bank_accounts in huvudbok.yaml")
			}

			files, err := importer.Scan(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to import")
				return nil
			}

			batchID := postlog.NewBatchID()
			var logEntries []postlog.Entry
			posted := 0

			for _, file := range files {
				f, err := os.Open(file.Path)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file.Name, err)
				}
				txns, err := parser.Parse(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("parsing %s: %w", file.Name, err)
				}

				vs := importer.PostTransactions(txns, importer.PostParams{
					BankAccount:    bankAccount,
					ExpenseAccount: expenseAccount,
					RevenueAccount: revenueAccount,
				})
				for _, v := range vs {
					verID, err := b.store.Append(b.journal, v)
					if err != nil {
						return fmt.Errorf("%s: %w", file.Name, err)
					}
					logEntries = append(logEntries, postlog.Entry{
						Timestamp:      time.Now().UTC(),
						BatchID:        batchID,
						Source:         parser.Format(),
						Action:         "post",
						Details:        fmt.Sprintf("%s %s", v.Description, v.Date.Format("2006-01-02")),
						VerificationID: verID,
					})
					posted++
				}

				if err := importer.MarkProcessed(dir, file.Name); err != nil {
					return err
				}
			}

			if b.cfg.Git.AutoCommit && gitops.IsRepo(dir) {
				msg := fmt.Sprintf("import: %d verifications from %d files", posted, len(files))
				hash, err := gitops.CommitAll(dir, msg, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
				if err != nil {
					return fmt.Errorf("committing: %w", err)
				}
				for i := range logEntries {
					logEntries[i].CommitHash = hash
				}
			}

			if err := postlog.Append(dir, logEntries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "posted %d verifications (batch %s)\n", posted, batchID)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "seb", "statement format")
	cmd.Flags().StringVar(&bankAccount, "bank", "", "bank account code (defaults to the first configured bank account)")
	cmd.Flags().StringVar(&expenseAccount, "expense", "4010", "counter account for money out")
	cmd.Flags().StringVar(&revenueAccount, "revenue", "3001", "counter account for money in")

	return cmd
}
