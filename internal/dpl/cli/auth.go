package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// accountURL is where DeepL shows the auth key for an account.
const accountURL = "https://www.deepl.com/account/summary"

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored DeepL auth key",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your DeepL auth key",
	Long: `Store a DeepL auth key in the dpl config file.

Examples:
  dpl auth login --auth-key xxxx:fx    # Store a key directly
  dpl auth login --open                # Open the account page to find your key`,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored auth key",
	RunE:  runAuthLogout,
}

var (
	authKeyFlag  string
	authOpenFlag bool
)

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)

	authLoginCmd.Flags().StringVar(&authKeyFlag, "auth-key", "", "DeepL auth key")
	authLoginCmd.Flags().BoolVar(&authOpenFlag, "open", false, "Open the DeepL account page in a browser")
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	if authKeyFlag != "" {
		if err := cfg.SetAuthKey(authKeyFlag); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		tier := "paid"
		if strings.HasSuffix(authKeyFlag, ":fx") {
			tier = "free"
		}
		printer.Success("Auth key stored (%s tier)", tier)
		return nil
	}

	if authOpenFlag {
		printer.Info("Opening %s", accountURL)
		if err := browser.OpenURL(accountURL); err != nil {
			printer.Warn("Could not open browser automatically")
			printer.Printf("Find your auth key at: %s\n", accountURL)
		}
		printer.Println()
		printer.Info("Then run: dpl auth login --auth-key <key>")
		return nil
	}

	return fmt.Errorf("pass --auth-key, or --open to look up your key")
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	if !cfg.IsAuthenticated() {
		printer.Warn("Not authenticated")
		return nil
	}

	key := cfg.AuthKey
	masked := key
	if len(key) > 8 {
		masked = key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
	}

	printer.Success("Authenticated")
	printer.KeyValue("auth key", masked)
	if strings.HasSuffix(key, ":fx") {
		printer.KeyValue("tier", "free")
	} else {
		printer.KeyValue("tier", "paid")
	}
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	if err := cfg.ClearAuth(); err != nil {
		return fmt.Errorf("failed to clear auth: %w", err)
	}
	printer.Success("Auth key removed")
	return nil
}
