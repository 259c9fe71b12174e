package deepl

import (
	"context"
	"net/url"
	"strings"
)

// SplitSentences controls how the engine splits input into sentences.
type SplitSentences string

const (
	// SplitNone disables sentence splitting; the input is one sentence.
	SplitNone SplitSentences = "0"
	// SplitPunctuationAndNewlines splits on punctuation and newlines. This
	// is the server default.
	SplitPunctuationAndNewlines SplitSentences = "1"
	// SplitPunctuationOnly splits on punctuation but ignores newlines.
	SplitPunctuationOnly SplitSentences = "nonewlines"
)

// Formality is a stylistic register hint for the translation engine.
type Formality string

const (
	FormalityDefault    Formality = "default"
	FormalityMore       Formality = "more"
	FormalityLess       Formality = "less"
	FormalityPreferMore Formality = "prefer_more"
	FormalityPreferLess Formality = "prefer_less"
)

// TagHandling tells the engine to keep markup spans intact while translating.
type TagHandling string

const (
	TagHandlingXML  TagHandling = "xml"
	TagHandlingHTML TagHandling = "html"
)

// ModelType selects the translation model variant.
type ModelType string

const (
	ModelQualityOptimized       ModelType = "quality_optimized"
	ModelPreferQualityOptimized ModelType = "prefer_quality_optimized"
	ModelLatencyOptimized       ModelType = "latency_optimized"
)

// TranslateOption sets an optional form field on a translation request.
type TranslateOption func(url.Values)

// SourceLang declares the source language instead of letting the engine
// detect it.
func SourceLang(l Lang) TranslateOption {
	return func(form url.Values) {
		form.Set("source_lang", string(l))
	}
}

// WithSplitSentences overrides the sentence splitting mode.
func WithSplitSentences(s SplitSentences) TranslateOption {
	return func(form url.Values) {
		form.Set("split_sentences", string(s))
	}
}

// PreserveFormatting keeps the original formatting even where the engine
// would normally correct it.
func PreserveFormatting(on bool) TranslateOption {
	return func(form url.Values) {
		if on {
			form.Set("preserve_formatting", "1")
		} else {
			form.Set("preserve_formatting", "0")
		}
	}
}

// WithFormality requests a formality register. Not every target language
// supports one; the "prefer" variants fall back instead of failing.
func WithFormality(f Formality) TranslateOption {
	return func(form url.Values) {
		form.Set("formality", string(f))
	}
}

// WithGlossary applies a stored glossary to the translation.
func WithGlossary(glossaryID string) TranslateOption {
	return func(form url.Values) {
		form.Set("glossary_id", glossaryID)
	}
}

// WithTagHandling enables markup-aware translation.
func WithTagHandling(t TagHandling) TranslateOption {
	return func(form url.Values) {
		form.Set("tag_handling", string(t))
	}
}

// NonSplittingTags names XML tags that never split sentences.
func NonSplittingTags(tags []string) TranslateOption {
	return func(form url.Values) {
		form.Set("non_splitting_tags", strings.Join(tags, ","))
	}
}

// SplittingTags names XML tags that always split sentences.
func SplittingTags(tags []string) TranslateOption {
	return func(form url.Values) {
		form.Set("splitting_tags", strings.Join(tags, ","))
	}
}

// IgnoreTags names XML tags whose content is left untranslated.
func IgnoreTags(tags []string) TranslateOption {
	return func(form url.Values) {
		form.Set("ignore_tags", strings.Join(tags, ","))
	}
}

// WithModelType selects the translation model variant.
func WithModelType(m ModelType) TranslateOption {
	return func(form url.Values) {
		form.Set("model_type", string(m))
	}
}

// Translation is one translated text with the language the engine detected.
type Translation struct {
	DetectedSourceLanguage Lang   `json:"detected_source_language"`
	Text                   string `json:"text"`
	BilledCharacters       int64  `json:"billed_characters,omitempty"`
	ModelTypeUsed          string `json:"model_type_used,omitempty"`
}

// TranslateResponse holds the translations in input order.
type TranslateResponse struct {
	Translations []Translation `json:"translations"`
}

// Translate translates a single text into the target language.
func (c *Client) Translate(ctx context.Context, text string, target Lang, opts ...TranslateOption) (*TranslateResponse, error) {
	return c.TranslateAll(ctx, []string{text}, target, opts...)
}

// TranslateAll translates several texts in one request. Results come back in
// the same order as the inputs.
func (c *Client) TranslateAll(ctx context.Context, texts []string, target Lang, opts ...TranslateOption) (*TranslateResponse, error) {
	form := url.Values{}
	for _, t := range texts {
		form.Add("text", t)
	}
	form.Set("target_lang", string(target))
	for _, opt := range opts {
		opt(form)
	}

	var result TranslateResponse
	if err := c.doForm(ctx, "/translate", form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
