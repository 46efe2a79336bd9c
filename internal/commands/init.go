package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huvudbok-dev/huvudbok/internal/accounts"
	"github.com/huvudbok-dev/huvudbok/internal/config"
	"github.com/huvudbok-dev/huvudbok/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var orgNumber string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, orgNumber)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&orgNumber, "org-number", "", "organisation number")

	return cmd
}

func runInit(dir, name, orgNumber string) error {
	dirs := []string{
		"accounts",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, orgNumber)
	if err := config.Save(filepath.Join(dir, "huvudbok.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	registry := accounts.NewRegistry(accounts.DefaultChart())
	if err := registry.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	gitignore := "exports/\n.huvudbok-cache/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	if cfg.Git.AutoCommit {
		if _, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Initialized books for %s in %s\n", name, dir)
	return nil
}
