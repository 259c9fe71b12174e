package deepl

import (
	"context"
	"io"
	"time"
)

// API defines every client operation for mocking in tests. The Client
// struct implements this interface.
type API interface {
	// SetAuthKey updates the auth key used for authentication
	SetAuthKey(authKey string)

	// Text translation
	Translate(ctx context.Context, text string, target Lang, opts ...TranslateOption) (*TranslateResponse, error)
	TranslateAll(ctx context.Context, texts []string, target Lang, opts ...TranslateOption) (*TranslateResponse, error)

	// Document translation
	UploadDocument(ctx context.Context, filePath string, target Lang, opts ...DocumentOption) (*DocumentHandle, error)
	UploadDocumentReader(ctx context.Context, r io.Reader, filename string, target Lang, opts ...DocumentOption) (*DocumentHandle, error)
	GetDocumentStatus(ctx context.Context, handle *DocumentHandle) (*DocumentStatus, error)
	DownloadDocument(ctx context.Context, handle *DocumentHandle, outPath string) (string, error)
	WaitForDocument(ctx context.Context, handle *DocumentHandle, pollInterval, timeout time.Duration) (*DocumentStatus, error)

	// Glossaries
	CreateGlossary(ctx context.Context, name string, source, target GlossaryLang, entries []GlossaryEntry, opts ...GlossaryOption) (*Glossary, error)
	ListGlossaries(ctx context.Context) ([]Glossary, error)
	GetGlossary(ctx context.Context, glossaryID string) (*Glossary, error)
	DeleteGlossary(ctx context.Context, glossaryID string) error
	GlossaryEntries(ctx context.Context, glossaryID string) ([]GlossaryEntry, error)
	GlossaryLanguagePairs(ctx context.Context) ([]GlossaryLanguagePair, error)

	// Account
	Usage(ctx context.Context) (*Usage, error)
	Languages(ctx context.Context, langType LangType) ([]Language, error)
}

// Ensure Client implements API at compile time
var _ API = (*Client)(nil)
