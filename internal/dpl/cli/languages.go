package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl"
	"github.com/lingopipe/deepl/internal/dpl/output"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `List the languages the API accepts as source or target.

Examples:
  dpl languages                 # target languages
  dpl languages --type source`,
	RunE: runLanguages,
}

var languagesType string

func init() {
	languagesCmd.Flags().StringVar(&languagesType, "type", "target", "Which side to list: source or target")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	var langType deepl.LangType
	switch languagesType {
	case "source":
		langType = deepl.SourceLanguages
	case "target":
		langType = deepl.TargetLanguages
	default:
		return fmt.Errorf("invalid --type %q, want source or target", languagesType)
	}

	languages, err := apiClient.Languages(cmd.Context(), langType)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(languages)
	}

	headers := []string{"CODE", "NAME"}
	if langType == deepl.TargetLanguages {
		headers = append(headers, "FORMALITY")
	}
	table := output.NewTable(headers, quietMode)
	for _, l := range languages {
		row := []string{l.Language, l.Name}
		if langType == deepl.TargetLanguages {
			row = append(row, strconv.FormatBool(l.SupportsFormality))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}
