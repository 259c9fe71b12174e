package deepl

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of API for testing.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) SetAuthKey(authKey string) {
	m.Called(authKey)
}

func (m *MockClient) Translate(ctx context.Context, text string, target Lang, opts ...TranslateOption) (*TranslateResponse, error) {
	args := m.Called(ctx, text, target, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TranslateResponse), args.Error(1)
}

func (m *MockClient) TranslateAll(ctx context.Context, texts []string, target Lang, opts ...TranslateOption) (*TranslateResponse, error) {
	args := m.Called(ctx, texts, target, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TranslateResponse), args.Error(1)
}

func (m *MockClient) UploadDocument(ctx context.Context, filePath string, target Lang, opts ...DocumentOption) (*DocumentHandle, error) {
	args := m.Called(ctx, filePath, target, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DocumentHandle), args.Error(1)
}

func (m *MockClient) UploadDocumentReader(ctx context.Context, r io.Reader, filename string, target Lang, opts ...DocumentOption) (*DocumentHandle, error) {
	args := m.Called(ctx, r, filename, target, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DocumentHandle), args.Error(1)
}

func (m *MockClient) GetDocumentStatus(ctx context.Context, handle *DocumentHandle) (*DocumentStatus, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DocumentStatus), args.Error(1)
}

func (m *MockClient) DownloadDocument(ctx context.Context, handle *DocumentHandle, outPath string) (string, error) {
	args := m.Called(ctx, handle, outPath)
	return args.String(0), args.Error(1)
}

func (m *MockClient) WaitForDocument(ctx context.Context, handle *DocumentHandle, pollInterval, timeout time.Duration) (*DocumentStatus, error) {
	args := m.Called(ctx, handle, pollInterval, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DocumentStatus), args.Error(1)
}

func (m *MockClient) CreateGlossary(ctx context.Context, name string, source, target GlossaryLang, entries []GlossaryEntry, opts ...GlossaryOption) (*Glossary, error) {
	args := m.Called(ctx, name, source, target, entries, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Glossary), args.Error(1)
}

func (m *MockClient) ListGlossaries(ctx context.Context) ([]Glossary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Glossary), args.Error(1)
}

func (m *MockClient) GetGlossary(ctx context.Context, glossaryID string) (*Glossary, error) {
	args := m.Called(ctx, glossaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Glossary), args.Error(1)
}

func (m *MockClient) DeleteGlossary(ctx context.Context, glossaryID string) error {
	args := m.Called(ctx, glossaryID)
	return args.Error(0)
}

func (m *MockClient) GlossaryEntries(ctx context.Context, glossaryID string) ([]GlossaryEntry, error) {
	args := m.Called(ctx, glossaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GlossaryEntry), args.Error(1)
}

func (m *MockClient) GlossaryLanguagePairs(ctx context.Context) ([]GlossaryLanguagePair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GlossaryLanguagePair), args.Error(1)
}

func (m *MockClient) Usage(ctx context.Context) (*Usage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Usage), args.Error(1)
}

func (m *MockClient) Languages(ctx context.Context, langType LangType) ([]Language, error) {
	args := m.Called(ctx, langType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Language), args.Error(1)
}

// Ensure MockClient implements API at compile time
var _ API = (*MockClient)(nil)
