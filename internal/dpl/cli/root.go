// Package cli implements the dpl command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl"
	"github.com/lingopipe/deepl/internal/dpl/config"
	"github.com/lingopipe/deepl/internal/dpl/output"
	"github.com/lingopipe/deepl/internal/dpl/version"
)

var (
	jsonOutput bool
	quietMode  bool
	verbose    bool
	cfg        *config.Config
	apiClient  deepl.API
	printer    *output.Printer
)

var rootCmd = &cobra.Command{
	Use:   "dpl",
	Short: "DeepL CLI - translate text and documents from the terminal",
	Long: `dpl is a command-line interface for the DeepL translation API.

Translate text, upload documents, and manage glossaries from the terminal.

Get started:
  dpl auth login             # Store your DeepL auth key
  dpl translate "Hi" --to DE # Translate text
  dpl usage                  # Check your quota`,
	Version: version.Full(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		printer = output.New(
			output.WithJSON(jsonOutput),
			output.WithQuiet(quietMode),
		)

		opts := []deepl.Option{}
		if cfg.ServerURL != "" {
			opts = append(opts, deepl.WithBaseURL(cfg.ServerURL))
		}
		if verbose {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			opts = append(opts, deepl.WithLogger(log))
		}
		apiClient = deepl.New(cfg.AuthKey, opts...)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API requests to stderr")

	rootCmd.SetVersionTemplate("dpl version {{.Version}}\n")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(documentCmd)
	rootCmd.AddCommand(glossaryCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(configCmd)
}

func requireAuth() error {
	if !cfg.IsAuthenticated() {
		printer.Error("Not authenticated. Run 'dpl auth login' first.")
		os.Exit(1)
	}
	return nil
}
