package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl/internal/dpl/output"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show account usage for the current billing period",
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	usage, err := apiClient.Usage(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(usage)
	}

	percent := 0.0
	if usage.CharacterLimit > 0 {
		percent = float64(usage.CharacterCount) / float64(usage.CharacterLimit) * 100
	}

	printer.KeyValue("characters used", fmt.Sprintf("%d", usage.CharacterCount))
	printer.KeyValue("character limit", fmt.Sprintf("%d", usage.CharacterLimit))
	printer.KeyValue("consumed", fmt.Sprintf("%.1f%%", percent))

	bar := output.NewUsageBar(usage.CharacterCount, usage.CharacterLimit, quietMode)
	bar.Finish()

	if percent >= 90 {
		printer.Warn("Quota nearly exhausted")
	}
	return nil
}
