package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huvudbok-dev/huvudbok/internal/accounts"
	"github.com/huvudbok-dev/huvudbok/internal/buildinfo"
	"github.com/huvudbok-dev/huvudbok/internal/config"
	"github.com/huvudbok-dev/huvudbok/internal/journal"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. The books directory resolves from --dir, the
// HUVUDBOK_DIR environment variable, or the working directory.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "huvudbok",
		Short:   "Double-entry bookkeeping and Swedish VAT reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "books directory")
	_ = viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindEnv("dir", "HUVUDBOK_DIR")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// booksDir resolves the configured books directory to an absolute path.
func booksDir() (string, error) {
	dir := viper.GetString("dir")
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving books directory: %w", err)
	}
	return abs, nil
}

// books bundles everything loaded from a books directory.
type books struct {
	root     string
	cfg      *config.Config
	registry *accounts.Registry
	store    *journal.Store
	journal  *journal.Journal
}

// loadBooks reads config, chart of accounts, and the journal from dir.
func loadBooks(dir string) (*books, error) {
	cfg, err := config.Load(filepath.Join(dir, "huvudbok.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	registry, err := accounts.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}

	store := journal.NewStore(dir)
	j, err := store.Load(registry)
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}

	return &books{
		root:     dir,
		cfg:      cfg,
		registry: registry,
		store:    store,
		journal:  j,
	}, nil
}
