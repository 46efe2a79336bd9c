package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/huvudbok-dev/huvudbok/internal/ledger"
	"github.com/huvudbok-dev/huvudbok/internal/report"
	"github.com/huvudbok-dev/huvudbok/internal/vat"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports over the journal",
	}

	cmd.AddCommand(newBalancesCommand())
	cmd.AddCommand(newRatiosCommand())
	cmd.AddCommand(newTrendCommand())
	cmd.AddCommand(newVatCommand())

	return cmd
}

// parseRange turns optional --from/--to flags into a ledger.Range.
func parseRange(from, to string) (ledger.Range, error) {
	var r ledger.Range
	var err error
	if from != "" {
		r.Start, err = time.Parse("2006-01-02", from)
		if err != nil {
			return ledger.Range{}, fmt.Errorf("parsing --from: %w", err)
		}
	}
	if to != "" {
		r.End, err = time.Parse("2006-01-02", to)
		if err != nil {
			return ledger.Range{}, fmt.Errorf("parsing --to: %w", err)
		}
	}
	return r, nil
}

func addRangeFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(to, "to", "", "end date (YYYY-MM-DD)")
}

func newBalancesCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Per-account balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := booksDir()
			if err != nil {
				return err
			}
			b, err := loadBooks(dir)
			if err != nil {
				return err
			}
			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			agg := ledger.New(b.journal, b.registry)
			balances := agg.AllBalances(r)

			codes := make([]string, 0, len(balances))
			for code := range balances {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			out := cmd.OutOrStdout()
			for _, code := range codes {
				bal := balances[code]
				if bal.Balance.IsZero() && len(bal.Transactions) == 0 {
					continue
				}
				presented, err := agg.Presented(bal)
				if err != nil {
					return err
				}
				acct, _ := b.registry.Get(code)
				fmt.Fprintf(out, "%s  %-40s %14s\n", code, acct.Name, presented.StringFixed(2))
			}
			return nil
		},
	}

	addRangeFlags(cmd, &from, &to)
	return cmd
}

func newRatiosCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Key financial ratios (soliditet, kassalikviditet, ...)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := booksDir()
			if err != nil {
				return err
			}
			b, err := loadBooks(dir)
			if err != nil {
				return err
			}
			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			agg := ledger.New(b.journal, b.registry)
			totals, err := agg.Totals(r)
			if err != nil {
				return err
			}
			ratios := report.CalcRatios(totals)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Soliditet:       %s %%\n", ratios.Solidity)
			fmt.Fprintf(out, "Kassalikviditet: %s %%\n", ratios.Liquidity)
			fmt.Fprintf(out, "Skuldsättning:   %s\n", ratios.DebtToEquity)
			fmt.Fprintf(out, "Vinstmarginal:   %s %%\n", ratios.ProfitMargin)
			if ratios.Degenerate {
				fmt.Fprintln(out, "varning: inga tillgångar bokförda, soliditeten är inte meningsfull")
			}
			return nil
		},
	}

	addRangeFlags(cmd, &from, &to)
	return cmd
}

func newTrendCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Monthly revenue/expense trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := booksDir()
			if err != nil {
				return err
			}
			b, err := loadBooks(dir)
			if err != nil {
				return err
			}
			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			trend, err := report.MonthlyTrend(b.journal, b.registry, r.Start, r.End)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, bucket := range trend {
				fmt.Fprintf(out, "%-16s intäkter %14s  kostnader %14s  resultat %14s\n",
					bucket.Key.Label(),
					bucket.Revenue.StringFixed(2),
					bucket.Expenses.StringFixed(2),
					bucket.Result.StringFixed(2))
			}
			return nil
		},
	}

	addRangeFlags(cmd, &from, &to)
	return cmd
}

func newVatCommand() *cobra.Command {
	var period string
	var submitted bool

	cmd := &cobra.Command{
		Use:   "vat",
		Short: "Quarterly VAT declaration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := booksDir()
			if err != nil {
				return err
			}
			b, err := loadBooks(dir)
			if err != nil {
				return err
			}

			gen := vat.NewGenerator(b.journal, b.cfg.VAT.CodeSets())
			rep, err := gen.Generate(period, time.Now().UTC(), submitted)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", `reporting period, e.g. "Q3 2024" (required)`)
	_ = cmd.MarkFlagRequired("period")
	cmd.Flags().BoolVar(&submitted, "submitted", false, "mark the declaration as filed")

	return cmd
}
