package deepl

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// GlossaryEntry is one source/target term pair.
type GlossaryEntry struct {
	Source string
	Target string
}

// EntriesFormat is the serialization used for glossary entries on create.
type EntriesFormat string

const (
	// FormatTSV separates term pairs with tabs. This is the default.
	FormatTSV EntriesFormat = "tsv"
	// FormatCSV separates term pairs with commas.
	FormatCSV EntriesFormat = "csv"
)

// Glossary is the server's description of a stored glossary, without its
// entries.
type Glossary struct {
	GlossaryID   string       `json:"glossary_id"`
	Name         string       `json:"name"`
	Ready        bool         `json:"ready"`
	SourceLang   GlossaryLang `json:"source_lang"`
	TargetLang   GlossaryLang `json:"target_lang"`
	CreationTime string       `json:"creation_time"`
	EntryCount   int64        `json:"entry_count"`
}

// GlossaryLanguagePair is a source/target combination the glossary feature
// supports.
type GlossaryLanguagePair struct {
	SourceLang GlossaryLang `json:"source_lang"`
	TargetLang GlossaryLang `json:"target_lang"`
}

// GlossaryOption sets an optional parameter on glossary creation.
type GlossaryOption func(*createGlossaryRequest)

// WithEntriesFormat selects how entries are serialized in the create request.
func WithEntriesFormat(f EntriesFormat) GlossaryOption {
	return func(req *createGlossaryRequest) {
		req.EntriesFormat = string(f)
	}
}

type createGlossaryRequest struct {
	Name          string `json:"name"`
	SourceLang    string `json:"source_lang"`
	TargetLang    string `json:"target_lang"`
	Entries       string `json:"entries"`
	EntriesFormat string `json:"entries_format"`
}

func encodeEntries(entries []GlossaryEntry, format EntriesFormat) string {
	sep := "\t"
	if format == FormatCSV {
		sep = ","
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Source+sep+e.Target)
	}
	return strings.Join(lines, "\n")
}

// CreateGlossary stores a named glossary for the given language pair. A
// glossary that is not yet ready cannot be referenced from translate
// requests; check Ready or fetch it again.
func (c *Client) CreateGlossary(ctx context.Context, name string, source, target GlossaryLang, entries []GlossaryEntry, opts ...GlossaryOption) (*Glossary, error) {
	req := &createGlossaryRequest{
		Name:          name,
		SourceLang:    string(source),
		TargetLang:    string(target),
		EntriesFormat: string(FormatTSV),
	}
	for _, opt := range opts {
		opt(req)
	}
	req.Entries = encodeEntries(entries, EntriesFormat(req.EntriesFormat))

	var result Glossary
	if err := c.doJSON(ctx, http.MethodPost, "/glossaries", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListGlossaries returns the metadata of every stored glossary.
func (c *Client) ListGlossaries(ctx context.Context) ([]Glossary, error) {
	var result struct {
		Glossaries []Glossary `json:"glossaries"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/glossaries", nil, &result); err != nil {
		return nil, err
	}
	return result.Glossaries, nil
}

// GetGlossary returns the metadata of a single glossary.
func (c *Client) GetGlossary(ctx context.Context, glossaryID string) (*Glossary, error) {
	var result Glossary
	if err := c.doJSON(ctx, http.MethodGet, "/glossaries/"+glossaryID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteGlossary removes a stored glossary.
func (c *Client) DeleteGlossary(ctx context.Context, glossaryID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/glossaries/"+glossaryID, nil, nil)
}

// GlossaryEntries fetches the term pairs of a glossary. The server sends
// them as tab-separated values.
func (c *Client) GlossaryEntries(ctx context.Context, glossaryID string) ([]GlossaryEntry, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/glossaries/"+glossaryID+"/entries", nil, "")
	if err != nil {
		return nil, wrap(err, ErrRequestFail)
	}
	req.Header.Set("Accept", "text/tab-separated-values")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrap(err, ErrRequestFail)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, c.parseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(err, ErrRequestFail)
	}

	var entries []GlossaryEntry
	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		if line == "" {
			continue
		}
		source, target, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, wrapWithMessage(nil, ErrInvalidResponse, "malformed glossary entry line: "+line)
		}
		entries = append(entries, GlossaryEntry{Source: source, Target: target})
	}
	return entries, nil
}

// GlossaryLanguagePairs lists the language pairs the glossary feature
// supports.
func (c *Client) GlossaryLanguagePairs(ctx context.Context) ([]GlossaryLanguagePair, error) {
	var result struct {
		SupportedLanguages []GlossaryLanguagePair `json:"supported_languages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/glossary-language-pairs", nil, &result); err != nil {
		return nil, err
	}
	return result.SupportedLanguages, nil
}
