package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl/internal/dpl/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `View and manage dpl CLI configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  server_url     API endpoint (free vs paid tier)
  formality      Default formality register for translations
  poll_interval  Document status poll cadence (e.g. 3s)

Examples:
  dpl config set server_url https://api-free.deepl.com/v2
  dpl config set formality prefer_more
  dpl config set poll_interval 5s`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	serverURL := cfg.ServerURL
	if serverURL == "" {
		serverURL = "(derived from auth key tier)"
	}

	if jsonOutput {
		return printer.JSON(map[string]interface{}{
			"server_url":    cfg.ServerURL,
			"authenticated": cfg.IsAuthenticated(),
			"formality":     cfg.Formality,
			"poll_interval": cfg.GetPollInterval().String(),
		})
	}

	printer.Header("Configuration")
	printer.KeyValue("Server URL", serverURL)
	printer.KeyValue("Authenticated", fmt.Sprintf("%v", cfg.IsAuthenticated()))
	if cfg.Formality != "" {
		printer.KeyValue("Formality", cfg.Formality)
	}
	printer.KeyValue("Poll interval", cfg.GetPollInterval().String())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "formality":
		cfg.Formality = value
	case "poll_interval":
		cfg.PollInterval = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	printer.Success("%s = %s", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if jsonOutput {
		return printer.JSON(map[string]string{"path": path})
	}
	printer.Println(path)
	return nil
}
