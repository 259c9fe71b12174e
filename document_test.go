package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestClient_UploadDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/document" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}

		if got := r.FormValue("target_lang"); got != "ZH" {
			t.Errorf("target_lang = %q, want ZH", got)
		}
		if got := r.FormValue("source_lang"); got != "EN" {
			t.Errorf("source_lang = %q, want EN", got)
		}
		if got := r.FormValue("formality"); got != "more" {
			t.Errorf("formality = %q, want more", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("failed to get file part: %v", err)
		}
		defer file.Close()

		if header.Filename != "sonnet.txt" {
			t.Errorf("filename = %q, want sonnet.txt", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if !strings.Contains(string(content), "Doubt thou") {
			t.Errorf("file content = %q", string(content))
		}

		json.NewEncoder(w).Encode(DocumentHandle{
			DocumentID:  "doc-1",
			DocumentKey: "key-1",
		})
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "sonnet.txt")
	os.WriteFile(testFile, []byte("Doubt thou the stars are fire."), 0644)

	c := New("abc123", WithBaseURL(server.URL))
	handle, err := c.UploadDocument(context.Background(), testFile, LangZH,
		DocumentSourceLang(LangEN),
		DocumentFormality(FormalityMore),
	)
	if err != nil {
		t.Fatalf("UploadDocument error = %v", err)
	}

	if handle.DocumentID != "doc-1" || handle.DocumentKey != "key-1" {
		t.Errorf("handle = %+v", handle)
	}
}

func TestClient_UploadDocument_MissingFile(t *testing.T) {
	c := New("abc123")
	_, err := c.UploadDocument(context.Background(), "/nonexistent/file.txt", LangDE)
	if !Is(err, ErrReadFile) {
		t.Errorf("expected read_file_error kind, got %v", err)
	}
}

func TestClient_UploadDocument_ServerRejection(t *testing.T) {
	// The handler rejects without reading the body, so the transport closes
	// the upload pipe mid-stream. The caller must still see the server's
	// answer, not a file read error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Authorization failure"})
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "big.txt")
	os.WriteFile(testFile, bytes.Repeat([]byte("lorem ipsum "), 1<<18), 0644)

	c := New("abc123", WithBaseURL(server.URL))
	_, err := c.UploadDocument(context.Background(), testFile, LangDE)
	if !Is(err, ErrRequestFail) {
		t.Fatalf("expected request_fail kind, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "Authorization failure") {
		t.Errorf("Message = %q, want the server's message", apiErr.Message)
	}
}

func TestClient_UploadDocumentReader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("failed to get file part: %v", err)
		}
		if header.Filename != "report.docx" {
			t.Errorf("filename = %q, want report.docx", header.Filename)
		}
		if got := r.FormValue("filename"); got != "report.docx" {
			t.Errorf("filename field = %q, want report.docx", got)
		}

		json.NewEncoder(w).Encode(DocumentHandle{DocumentID: "doc-2", DocumentKey: "key-2"})
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	handle, err := c.UploadDocumentReader(context.Background(), strings.NewReader("contents"), "report.docx", LangDE)
	if err != nil {
		t.Fatalf("UploadDocumentReader error = %v", err)
	}
	if handle.DocumentID != "doc-2" {
		t.Errorf("DocumentID = %s, want doc-2", handle.DocumentID)
	}
}

func TestClient_GetDocumentStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/document/doc-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("document_key"); got != "key-1" {
			t.Errorf("document_key = %q, want key-1", got)
		}

		json.NewEncoder(w).Encode(DocumentStatus{
			DocumentID:       "doc-1",
			Status:           StateTranslating,
			SecondsRemaining: 20,
		})
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	status, err := c.GetDocumentStatus(context.Background(), &DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"})
	if err != nil {
		t.Fatalf("GetDocumentStatus error = %v", err)
	}

	if status.Status != StateTranslating {
		t.Errorf("Status = %s, want translating", status.Status)
	}
	if status.Status.IsDone() {
		t.Error("translating should not be done")
	}
	if status.SecondsRemaining != 20 {
		t.Errorf("SecondsRemaining = %d, want 20", status.SecondsRemaining)
	}
}

func TestDocumentState_IsDone(t *testing.T) {
	tests := []struct {
		state DocumentState
		want  bool
	}{
		{StateQueued, false},
		{StateTranslating, false},
		{StateDone, true},
		{StateError, false},
	}
	for _, tt := range tests {
		if got := tt.state.IsDone(); got != tt.want {
			t.Errorf("%s.IsDone() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestClient_DownloadDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/document/doc-1/result" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte("translated content"))
	}))
	defer server.Close()

	outPath := filepath.Join(t.TempDir(), "out.txt")

	c := New("abc123", WithBaseURL(server.URL))
	written, err := c.DownloadDocument(context.Background(), &DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"}, outPath)
	if err != nil {
		t.Fatalf("DownloadDocument error = %v", err)
	}
	if written != outPath {
		t.Errorf("written path = %s, want %s", written, outPath)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(content) != "translated content" {
		t.Errorf("content = %q", string(content))
	}
}

func TestClient_DownloadDocument_ReplacesExisting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fresh content"))
	}))
	defer server.Close()

	outPath := filepath.Join(t.TempDir(), "out.txt")
	os.WriteFile(outPath, []byte("stale"), 0644)

	c := New("abc123", WithBaseURL(server.URL))
	if _, err := c.DownloadDocument(context.Background(), &DocumentHandle{DocumentID: "d", DocumentKey: "k"}, outPath); err != nil {
		t.Fatalf("DownloadDocument error = %v", err)
	}

	content, _ := os.ReadFile(outPath)
	if string(content) != "fresh content" {
		t.Errorf("content = %q, want fresh content", string(content))
	}
}

func TestClient_DownloadDocument_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	_, err := c.DownloadDocument(context.Background(), &DocumentHandle{DocumentID: "bad", DocumentKey: "bad"}, filepath.Join(t.TempDir(), "out"))
	if !Is(err, ErrDocumentNotFound) {
		t.Errorf("expected document_not_found kind, got %v", err)
	}
}

func TestClient_DownloadDocument_NotDone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	_, err := c.DownloadDocument(context.Background(), &DocumentHandle{DocumentID: "d", DocumentKey: "k"}, filepath.Join(t.TempDir(), "out"))
	if !Is(err, ErrTranslationNotDone) {
		t.Errorf("expected translation_not_done kind, got %v", err)
	}
}

func TestClient_WaitForDocument(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		status := StateTranslating
		if calls >= 3 {
			status = StateDone
		}
		json.NewEncoder(w).Encode(DocumentStatus{
			DocumentID:       "doc-1",
			Status:           status,
			BilledCharacters: 42,
		})
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	status, err := c.WaitForDocument(context.Background(), &DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"},
		10*time.Millisecond, 5*time.Second)
	if err != nil {
		t.Fatalf("WaitForDocument error = %v", err)
	}

	if !status.Status.IsDone() {
		t.Errorf("Status = %s, want done", status.Status)
	}
	if calls < 3 {
		t.Errorf("Expected at least 3 API calls, got %d", calls)
	}
}

func TestClient_WaitForDocument_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DocumentStatus{
			DocumentID:   "doc-1",
			Status:       StateError,
			ErrorMessage: "source and target language are identical",
		})
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	status, err := c.WaitForDocument(context.Background(), &DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"},
		10*time.Millisecond, 5*time.Second)
	if err != nil {
		t.Fatalf("WaitForDocument error = %v", err)
	}

	if status.Status != StateError {
		t.Errorf("Status = %s, want error", status.Status)
	}
	if status.ErrorMessage == "" {
		t.Error("ErrorMessage should be surfaced")
	}
}

func TestClient_WaitForDocument_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DocumentStatus{DocumentID: "doc-1", Status: StateQueued})
	}))
	defer server.Close()

	c := New("abc123", WithBaseURL(server.URL))
	_, err := c.WaitForDocument(context.Background(), &DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"},
		10*time.Millisecond, 50*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
