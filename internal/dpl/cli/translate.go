package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text",
	Long: `Translate one or more texts.

Examples:
  dpl translate "Hello World" --to DE
  dpl translate "Hello" "Goodbye" --to JA --from EN
  dpl translate "Guten Tag" --to EN-US --formality more
  cat notes.txt | dpl translate --to FR
  dpl translate "<p>Hi</p>" --to NL --tag-handling html`,
	RunE: runTranslate,
}

var (
	translateTo         string
	translateFrom       string
	translateFormality  string
	translateGlossary   string
	translateTagMode    string
	translateIgnore     []string
	translateNonSplit   []string
	translateSplitTags  []string
	translateSplitMode  string
	translatePreserve   bool
	translateModel      string
	translateShowSource bool
)

func init() {
	translateCmd.Flags().StringVar(&translateTo, "to", "", "Target language code (required)")
	translateCmd.Flags().StringVar(&translateFrom, "from", "", "Source language code (default: detect)")
	translateCmd.Flags().StringVar(&translateFormality, "formality", "", "Formality: default, more, less, prefer_more, prefer_less")
	translateCmd.Flags().StringVar(&translateGlossary, "glossary", "", "Glossary ID to apply")
	translateCmd.Flags().StringVar(&translateTagMode, "tag-handling", "", "Markup mode: xml or html")
	translateCmd.Flags().StringSliceVar(&translateIgnore, "ignore-tags", nil, "Tags whose content stays untranslated")
	translateCmd.Flags().StringSliceVar(&translateNonSplit, "non-splitting-tags", nil, "Tags that never split sentences")
	translateCmd.Flags().StringSliceVar(&translateSplitTags, "splitting-tags", nil, "Tags that always split sentences")
	translateCmd.Flags().StringVar(&translateSplitMode, "split-sentences", "", "Sentence splitting: none, punctuation-and-newlines, punctuation-only")
	translateCmd.Flags().BoolVar(&translatePreserve, "preserve-formatting", false, "Keep original formatting")
	translateCmd.Flags().StringVar(&translateModel, "model", "", "Model type: quality_optimized, prefer_quality_optimized, latency_optimized")
	translateCmd.Flags().BoolVar(&translateShowSource, "show-source", false, "Print the detected source language")

	_ = translateCmd.MarkFlagRequired("to")
}

func translateOptions() ([]deepl.TranslateOption, error) {
	var opts []deepl.TranslateOption

	if translateFrom != "" {
		from, err := deepl.ParseLang(translateFrom)
		if err != nil {
			return nil, err
		}
		opts = append(opts, deepl.SourceLang(from))
	}
	if translateFormality == "" && cfg.Formality != "" {
		translateFormality = cfg.Formality
	}
	if translateFormality != "" {
		opts = append(opts, deepl.WithFormality(deepl.Formality(translateFormality)))
	}
	if translateGlossary != "" {
		opts = append(opts, deepl.WithGlossary(translateGlossary))
	}
	if translateTagMode != "" {
		opts = append(opts, deepl.WithTagHandling(deepl.TagHandling(translateTagMode)))
	}
	if len(translateIgnore) > 0 {
		opts = append(opts, deepl.IgnoreTags(translateIgnore))
	}
	if len(translateNonSplit) > 0 {
		opts = append(opts, deepl.NonSplittingTags(translateNonSplit))
	}
	if len(translateSplitTags) > 0 {
		opts = append(opts, deepl.SplittingTags(translateSplitTags))
	}
	if translateSplitMode != "" {
		mode, err := parseSplitMode(translateSplitMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, deepl.WithSplitSentences(mode))
	}
	if translatePreserve {
		opts = append(opts, deepl.PreserveFormatting(true))
	}
	if translateModel != "" {
		opts = append(opts, deepl.WithModelType(deepl.ModelType(translateModel)))
	}

	return opts, nil
}

func parseSplitMode(s string) (deepl.SplitSentences, error) {
	switch s {
	case "none":
		return deepl.SplitNone, nil
	case "punctuation-and-newlines":
		return deepl.SplitPunctuationAndNewlines, nil
	case "punctuation-only":
		return deepl.SplitPunctuationOnly, nil
	default:
		return "", fmt.Errorf("invalid --split-sentences value %q", s)
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	target, err := deepl.ParseLang(translateTo)
	if err != nil {
		return err
	}

	texts := args
	if len(texts) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text := strings.TrimRight(string(data), "\n")
		if text == "" {
			return fmt.Errorf("no text to translate")
		}
		texts = []string{text}
	}

	opts, err := translateOptions()
	if err != nil {
		return err
	}

	resp, err := apiClient.TranslateAll(cmd.Context(), texts, target, opts...)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(resp)
	}

	for _, tr := range resp.Translations {
		detected := ""
		if translateShowSource {
			detected = string(tr.DetectedSourceLanguage)
		}
		printer.Translated(tr.Text, detected)
	}

	// quiet mode still gets the bare translations on stdout
	if quietMode {
		for _, tr := range resp.Translations {
			fmt.Fprintln(os.Stdout, tr.Text)
		}
	}
	return nil
}
