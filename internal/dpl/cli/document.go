package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lingopipe/deepl"
	"github.com/lingopipe/deepl/internal/dpl/output"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Translate whole documents",
	Long: `Upload documents for translation, poll their status, and download results.

Examples:
  dpl document upload report.docx --to DE --wait -o report-de.docx
  dpl document upload report.docx --to DE
  dpl document status <id> --key <key> --watch
  dpl document download <id> --key <key> -o report-de.docx`,
}

var documentUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document for translation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentUpload,
}

var documentStatusCmd = &cobra.Command{
	Use:   "status <document-id>",
	Short: "Check document translation status",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentStatus,
}

var documentDownloadCmd = &cobra.Command{
	Use:   "download <document-id>",
	Short: "Download a translated document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDownload,
}

var (
	docTo         string
	docFrom       string
	docFormality  string
	docGlossary   string
	docFilename   string
	docWait       bool
	docOutput     string
	docDownloadTo string
	docKey        string
	docWatch      bool
)

func init() {
	documentCmd.AddCommand(documentUploadCmd)
	documentCmd.AddCommand(documentStatusCmd)
	documentCmd.AddCommand(documentDownloadCmd)

	documentUploadCmd.Flags().StringVar(&docTo, "to", "", "Target language code (required)")
	documentUploadCmd.Flags().StringVar(&docFrom, "from", "", "Source language code (default: detect)")
	documentUploadCmd.Flags().StringVar(&docFormality, "formality", "", "Formality register")
	documentUploadCmd.Flags().StringVar(&docGlossary, "glossary", "", "Glossary ID to apply")
	documentUploadCmd.Flags().StringVar(&docFilename, "name", "", "Filename to report to the server")
	documentUploadCmd.Flags().BoolVarP(&docWait, "wait", "w", false, "Wait for translation and download the result")
	documentUploadCmd.Flags().StringVarP(&docOutput, "output", "o", "", "Output path for the translated document (with --wait)")
	_ = documentUploadCmd.MarkFlagRequired("to")

	documentStatusCmd.Flags().StringVar(&docKey, "key", "", "Document key from upload (required)")
	documentStatusCmd.Flags().BoolVar(&docWatch, "watch", false, "Poll until the translation finishes")
	_ = documentStatusCmd.MarkFlagRequired("key")

	documentDownloadCmd.Flags().StringVar(&docKey, "key", "", "Document key from upload (required)")
	documentDownloadCmd.Flags().StringVarP(&docDownloadTo, "output", "o", ".", "Output file or directory")
	_ = documentDownloadCmd.MarkFlagRequired("key")
}

func documentOptions() ([]deepl.DocumentOption, error) {
	var opts []deepl.DocumentOption

	if docFrom != "" {
		from, err := deepl.ParseLang(docFrom)
		if err != nil {
			return nil, err
		}
		opts = append(opts, deepl.DocumentSourceLang(from))
	}
	if docFormality == "" && cfg.Formality != "" {
		docFormality = cfg.Formality
	}
	if docFormality != "" {
		opts = append(opts, deepl.DocumentFormality(deepl.Formality(docFormality)))
	}
	if docGlossary != "" {
		opts = append(opts, deepl.DocumentGlossary(docGlossary))
	}
	if docFilename != "" {
		opts = append(opts, deepl.DocumentFilename(docFilename))
	}
	return opts, nil
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	target, err := deepl.ParseLang(docTo)
	if err != nil {
		return err
	}

	opts, err := documentOptions()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	handle, err := apiClient.UploadDocument(ctx, args[0], target, opts...)
	if err != nil {
		return err
	}

	if !docWait {
		if jsonOutput {
			return printer.JSON(handle)
		}
		printer.DocumentHandle(handle.DocumentID, handle.DocumentKey)
		return nil
	}

	spinner := output.NewSpinner("translating "+filepath.Base(args[0]), quietMode || jsonOutput)
	status, err := apiClient.WaitForDocument(ctx, handle, cfg.GetPollInterval(), cfg.GetTimeout("document_wait"))
	spinner.Finish()
	if err != nil {
		return err
	}

	if status.Status == deepl.StateError {
		if status.ErrorMessage != "" {
			return fmt.Errorf("document translation failed: %s", status.ErrorMessage)
		}
		return fmt.Errorf("document translation failed")
	}

	outPath := docOutput
	if outPath == "" {
		base := filepath.Base(args[0])
		ext := filepath.Ext(base)
		outPath = strings.TrimSuffix(base, ext) + "." + strings.ToLower(docTo) + ext
	}

	written, err := apiClient.DownloadDocument(ctx, handle, outPath)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printer.JSON(map[string]interface{}{
			"document_id": handle.DocumentID,
			"path":        written,
			"billed":      status.BilledCharacters,
		})
	}
	printer.Success("Translated document written to %s", written)
	if status.BilledCharacters > 0 {
		printer.Indent("billed characters: %d", status.BilledCharacters)
	}
	return nil
}

func runDocumentStatus(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	handle := &deepl.DocumentHandle{DocumentID: args[0], DocumentKey: docKey}
	ctx := cmd.Context()

	if docWatch {
		return watchDocument(ctx, handle)
	}

	status, err := apiClient.GetDocumentStatus(ctx, handle)
	if err != nil {
		return err
	}
	return printDocumentStatus(status)
}

// watchDocument polls the status endpoint itself instead of WaitForDocument
// so the spinner text can follow the server-reported progress.
func watchDocument(ctx context.Context, handle *deepl.DocumentHandle) error {
	spinner := output.NewSpinner("waiting for translation", quietMode || jsonOutput)

	ctx, cancel := context.WithTimeout(ctx, cfg.GetTimeout("document_wait"))
	defer cancel()

	ticker := time.NewTicker(cfg.GetPollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			spinner.Finish()
			return ctx.Err()
		case <-ticker.C:
			status, err := apiClient.GetDocumentStatus(ctx, handle)
			if err != nil {
				spinner.Finish()
				return err
			}
			if status.Status == deepl.StateDone || status.Status == deepl.StateError {
				spinner.Finish()
				if err := printDocumentStatus(status); err != nil {
					return err
				}
				printer.Indent("waited %s", spinner.Duration().Round(time.Second))
				return nil
			}
			desc := string(status.Status)
			if status.SecondsRemaining > 0 {
				desc = fmt.Sprintf("%s, about %ds left", status.Status, status.SecondsRemaining)
			}
			spinner.Update(desc)
		}
	}
}

func printDocumentStatus(status *deepl.DocumentStatus) error {
	if jsonOutput {
		return printer.JSON(status)
	}

	switch status.Status {
	case deepl.StateDone:
		printer.Success("done")
	case deepl.StateError:
		printer.Error("error: %s", status.ErrorMessage)
	default:
		printer.Info("%s", string(status.Status))
		if status.SecondsRemaining > 0 {
			printer.Indent("about %ds remaining", status.SecondsRemaining)
		}
	}
	if status.BilledCharacters > 0 {
		printer.Indent("billed characters: %d", status.BilledCharacters)
	}
	return nil
}

func runDocumentDownload(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	handle := &deepl.DocumentHandle{DocumentID: args[0], DocumentKey: docKey}

	outPath := docDownloadTo
	if isDir(outPath) {
		safe, err := safePath(outPath, args[0])
		if err != nil {
			return err
		}
		outPath = safe
	}

	written, err := apiClient.DownloadDocument(cmd.Context(), handle, outPath)
	if err != nil {
		if deepl.Is(err, deepl.ErrTranslationNotDone) {
			printer.Warn("Translation is not finished yet. Check 'dpl document status' first.")
		}
		return err
	}

	if jsonOutput {
		return printer.JSON(map[string]string{"path": written})
	}
	printer.Success("Downloaded to %s", written)
	return nil
}
