package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// DocumentHandle identifies an uploaded document. The key encrypts the
// document server-side and must accompany every follow-up request.
type DocumentHandle struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

// DocumentState is the server-reported stage of a document translation.
type DocumentState string

const (
	// StateQueued means the document is waiting to be processed.
	StateQueued DocumentState = "queued"
	// StateTranslating means translation is in progress.
	StateTranslating DocumentState = "translating"
	// StateDone means the translated document is ready for download.
	StateDone DocumentState = "done"
	// StateError means translation failed; see DocumentStatus.ErrorMessage.
	StateError DocumentState = "error"
)

// IsDone reports whether the translated document is ready for download.
func (s DocumentState) IsDone() bool {
	return s == StateDone
}

func (s DocumentState) terminal() bool {
	return s == StateDone || s == StateError
}

// DocumentStatus is the response of the document status endpoint.
type DocumentStatus struct {
	DocumentID       string        `json:"document_id"`
	Status           DocumentState `json:"status"`
	SecondsRemaining int64         `json:"seconds_remaining,omitempty"`
	BilledCharacters int64         `json:"billed_characters,omitempty"`
	ErrorMessage     string        `json:"error_message,omitempty"`
}

// DocumentOption sets an optional multipart field on a document upload.
type DocumentOption func(map[string]string)

// DocumentSourceLang declares the document's source language.
func DocumentSourceLang(l Lang) DocumentOption {
	return func(fields map[string]string) {
		fields["source_lang"] = string(l)
	}
}

// DocumentFilename overrides the filename sent to the server. The extension
// determines how the document is parsed.
func DocumentFilename(name string) DocumentOption {
	return func(fields map[string]string) {
		fields["filename"] = name
	}
}

// DocumentFormality requests a formality register for the translation.
func DocumentFormality(f Formality) DocumentOption {
	return func(fields map[string]string) {
		fields["formality"] = string(f)
	}
}

// DocumentGlossary applies a stored glossary to the translation.
func DocumentGlossary(glossaryID string) DocumentOption {
	return func(fields map[string]string) {
		fields["glossary_id"] = glossaryID
	}
}

// UploadDocument uploads a file for translation and returns the handle
// needed to poll and download the result. The file is streamed, not
// buffered in memory.
func (c *Client) UploadDocument(ctx context.Context, filePath string, target Lang, opts ...DocumentOption) (*DocumentHandle, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, wrapWithMessage(err, ErrReadFile, "failed to read "+filePath)
	}
	defer func() { _ = file.Close() }()

	fields := map[string]string{"target_lang": string(target)}
	for _, opt := range opts {
		opt(fields)
	}

	filename := fields["filename"]
	if filename == "" {
		filename = filepath.Base(filePath)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	errCh := make(chan error, 1)

	go func() {
		defer func() { _ = pw.Close() }()

		for k, v := range fields {
			if err := writer.WriteField(k, v); err != nil {
				errCh <- err
				return
			}
		}

		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			errCh <- err
			return
		}

		if _, err := io.Copy(part, file); err != nil {
			errCh <- err
			return
		}

		errCh <- writer.Close()
	}()

	resp, err := c.doRequest(ctx, http.MethodPost, "/document", pr, writer.FormDataContentType())
	if err != nil {
		return nil, wrapWithMessage(err, ErrRequestFail, "failed to upload document")
	}
	defer func() { _ = resp.Body.Close() }()

	// A rejection can arrive before the body is fully sent; the transport then
	// closes the pipe and the writer goroutine fails with ErrClosedPipe. The
	// server's answer wins over that secondary failure.
	if resp.StatusCode >= 400 {
		return nil, c.parseError(resp)
	}

	if writeErr := <-errCh; writeErr != nil {
		return nil, wrapWithMessage(writeErr, ErrReadFile, "failed to read "+filePath)
	}

	var handle DocumentHandle
	if err := json.NewDecoder(resp.Body).Decode(&handle); err != nil {
		return nil, wrap(err, ErrInvalidResponse)
	}
	return &handle, nil
}

// UploadDocumentReader uploads document bytes from r under the given
// filename. The extension of filename determines how the server parses the
// document.
func (c *Client) UploadDocumentReader(ctx context.Context, r io.Reader, filename string, target Lang, opts ...DocumentOption) (*DocumentHandle, error) {
	fields := map[string]string{"target_lang": string(target)}
	for _, opt := range opts {
		opt(fields)
	}
	if fields["filename"] == "" {
		fields["filename"] = filename
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, wrap(err, ErrRequestFail)
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, wrap(err, ErrRequestFail)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, wrapWithMessage(err, ErrReadFile, "failed to read document body")
	}
	if err := writer.Close(); err != nil {
		return nil, wrap(err, ErrRequestFail)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/document", &buf, writer.FormDataContentType())
	if err != nil {
		return nil, wrapWithMessage(err, ErrRequestFail, "failed to upload document")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, c.parseError(resp)
	}

	var handle DocumentHandle
	if err := json.NewDecoder(resp.Body).Decode(&handle); err != nil {
		return nil, wrap(err, ErrInvalidResponse)
	}
	return &handle, nil
}

// GetDocumentStatus polls the translation state of an uploaded document.
func (c *Client) GetDocumentStatus(ctx context.Context, handle *DocumentHandle) (*DocumentStatus, error) {
	form := url.Values{}
	form.Set("document_key", handle.DocumentKey)

	var status DocumentStatus
	if err := c.doForm(ctx, "/document/"+handle.DocumentID, form, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// DownloadDocument fetches the translated document and writes it to outPath,
// returning the path written. The file is created exclusively; an existing
// file at outPath is removed and the create retried once.
func (c *Client) DownloadDocument(ctx context.Context, handle *DocumentHandle, outPath string) (string, error) {
	form := url.Values{}
	form.Set("document_key", handle.DocumentKey)

	resp, err := c.doRequest(ctx, http.MethodPost, "/document/"+handle.DocumentID+"/result",
		bytes.NewBufferString(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return "", wrapWithMessage(err, ErrRequestFail, "failed to download document")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrDocumentNotFound
	case resp.StatusCode == http.StatusServiceUnavailable:
		return "", ErrTranslationNotDone
	case resp.StatusCode >= 400:
		return "", c.parseError(resp)
	}

	out, err := createExclusive(outPath)
	if err != nil {
		return "", wrapWithMessage(err, ErrWriteFile, "failed to create "+outPath)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath)
		return "", wrapWithMessage(err, ErrWriteFile, "failed to write "+outPath)
	}
	if err := out.Close(); err != nil {
		return "", wrapWithMessage(err, ErrWriteFile, "failed to write "+outPath)
	}
	return outPath, nil
}

func createExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err == nil || !os.IsExist(err) {
		return f, err
	}
	// Stale file from an earlier run; replace it.
	if err := os.Remove(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// WaitForDocument polls the status endpoint until the translation reaches a
// terminal state. A server-side failure is reported through the returned
// status, not as an error; check Status and ErrorMessage.
func (c *Client) WaitForDocument(ctx context.Context, handle *DocumentHandle, pollInterval, timeout time.Duration) (*DocumentStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			status, err := c.GetDocumentStatus(ctx, handle)
			if err != nil {
				return nil, err
			}
			if status.Status.terminal() {
				return status, nil
			}
		}
	}
}
