package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl"
	"github.com/lingopipe/deepl/internal/dpl/output"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Manage stored glossaries",
	Long: `Create, inspect and delete glossaries.

Examples:
  dpl glossary create "Product terms" --from en --to de --entry "Hello=Guten Tag" --entry "Bye=Auf Wiedersehen"
  dpl glossary create "Product terms" --from en --to de --entries-file terms.tsv
  dpl glossary list
  dpl glossary show <id>
  dpl glossary entries <id>
  dpl glossary delete <id>
  dpl glossary languages`,
}

var glossaryCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a glossary",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlossaryCreate,
}

var glossaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all glossaries",
	RunE:  runGlossaryList,
}

var glossaryShowCmd = &cobra.Command{
	Use:   "show <glossary-id>",
	Short: "Show glossary metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlossaryShow,
}

var glossaryEntriesCmd = &cobra.Command{
	Use:   "entries <glossary-id>",
	Short: "List the term pairs of a glossary",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlossaryEntries,
}

var glossaryDeleteCmd = &cobra.Command{
	Use:   "delete <glossary-id>",
	Short: "Delete a glossary",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlossaryDelete,
}

var glossaryLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported glossary language pairs",
	RunE:  runGlossaryLanguages,
}

var (
	glossaryFrom        string
	glossaryTo          string
	glossaryEntryFlags  []string
	glossaryEntriesFile string
	glossaryCSV         bool
)

func init() {
	glossaryCmd.AddCommand(glossaryCreateCmd)
	glossaryCmd.AddCommand(glossaryListCmd)
	glossaryCmd.AddCommand(glossaryShowCmd)
	glossaryCmd.AddCommand(glossaryEntriesCmd)
	glossaryCmd.AddCommand(glossaryDeleteCmd)
	glossaryCmd.AddCommand(glossaryLanguagesCmd)

	glossaryCreateCmd.Flags().StringVar(&glossaryFrom, "from", "", "Source language (required)")
	glossaryCreateCmd.Flags().StringVar(&glossaryTo, "to", "", "Target language (required)")
	glossaryCreateCmd.Flags().StringArrayVar(&glossaryEntryFlags, "entry", nil, "Term pair as source=target (repeatable)")
	glossaryCreateCmd.Flags().StringVar(&glossaryEntriesFile, "entries-file", "", "TSV file with one source<TAB>target pair per line")
	glossaryCreateCmd.Flags().BoolVar(&glossaryCSV, "csv", false, "Send entries in CSV format instead of TSV")
	_ = glossaryCreateCmd.MarkFlagRequired("from")
	_ = glossaryCreateCmd.MarkFlagRequired("to")
}

func collectEntries() ([]deepl.GlossaryEntry, error) {
	var entries []deepl.GlossaryEntry

	for _, raw := range glossaryEntryFlags {
		source, target, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --entry %q, want source=target", raw)
		}
		entries = append(entries, deepl.GlossaryEntry{Source: source, Target: target})
	}

	if glossaryEntriesFile != "" {
		data, err := os.ReadFile(glossaryEntriesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read entries file: %w", err)
		}
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			if line == "" {
				continue
			}
			source, target, ok := strings.Cut(line, "\t")
			if !ok {
				return nil, fmt.Errorf("invalid line in entries file: %q", line)
			}
			entries = append(entries, deepl.GlossaryEntry{Source: source, Target: target})
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries given; use --entry or --entries-file")
	}
	return entries, nil
}

func runGlossaryCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	source, err := deepl.ParseGlossaryLang(glossaryFrom)
	if err != nil {
		return err
	}
	target, err := deepl.ParseGlossaryLang(glossaryTo)
	if err != nil {
		return err
	}

	entries, err := collectEntries()
	if err != nil {
		return err
	}

	var opts []deepl.GlossaryOption
	if glossaryCSV {
		opts = append(opts, deepl.WithEntriesFormat(deepl.FormatCSV))
	}

	glossary, err := apiClient.CreateGlossary(cmd.Context(), args[0], source, target, entries, opts...)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(glossary)
	}
	printer.Success("Glossary %q created", glossary.Name)
	printer.KeyValue("id", glossary.GlossaryID)
	printer.KeyValue("ready", strconv.FormatBool(glossary.Ready))
	printer.KeyValue("entries", strconv.FormatInt(glossary.EntryCount, 10))
	return nil
}

func runGlossaryList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	glossaries, err := apiClient.ListGlossaries(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(glossaries)
	}

	if len(glossaries) == 0 {
		printer.Info("No glossaries stored")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME", "PAIR", "ENTRIES", "READY"}, quietMode)
	for _, g := range glossaries {
		table.Append([]string{
			g.GlossaryID,
			g.Name,
			string(g.SourceLang) + "→" + string(g.TargetLang),
			strconv.FormatInt(g.EntryCount, 10),
			strconv.FormatBool(g.Ready),
		})
	}
	table.Render()
	return nil
}

func runGlossaryShow(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	glossary, err := apiClient.GetGlossary(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(glossary)
	}
	printer.Header(glossary.Name)
	printer.KeyValue("id", glossary.GlossaryID)
	printer.KeyValue("source", string(glossary.SourceLang))
	printer.KeyValue("target", string(glossary.TargetLang))
	printer.KeyValue("entries", strconv.FormatInt(glossary.EntryCount, 10))
	printer.KeyValue("ready", strconv.FormatBool(glossary.Ready))
	printer.KeyValue("created", glossary.CreationTime)
	return nil
}

func runGlossaryEntries(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	entries, err := apiClient.GlossaryEntries(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(entries)
	}

	table := output.NewTable([]string{"SOURCE", "TARGET"}, quietMode)
	for _, e := range entries {
		table.Append([]string{e.Source, e.Target})
	}
	table.Render()
	return nil
}

func runGlossaryDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	if err := apiClient.DeleteGlossary(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Glossary %s deleted", args[0])
	return nil
}

func runGlossaryLanguages(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	pairs, err := apiClient.GlossaryLanguagePairs(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(pairs)
	}

	table := output.NewTable([]string{"SOURCE", "TARGET"}, quietMode)
	for _, p := range pairs {
		table.Append([]string{string(p.SourceLang), string(p.TargetLang)})
	}
	table.Render()
	return nil
}
