// Package deepl is a typed client for the DeepL translation REST API. It
// covers text translation, document upload/poll/download, glossary management
// and usage queries.
package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lingopipe/deepl/internal/dpl/version"
)

const (
	// ProBaseURL is the endpoint for paid accounts.
	ProBaseURL = "https://api.deepl.com/v2"
	// FreeBaseURL is the endpoint for free accounts.
	FreeBaseURL = "https://api-free.deepl.com/v2"

	// freeKeySuffix marks auth keys issued for free-tier accounts.
	freeKeySuffix = ":fx"

	defaultTimeout = 5 * time.Minute
)

type Client struct {
	baseURL    string
	authKey    string
	userAgent  string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at a custom endpoint. It overrides both tier
// detection and WithPro.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithPro forces the paid endpoint regardless of the key suffix.
func WithPro() Option {
	return func(c *Client) {
		c.baseURL = ProBaseURL
	}
}

// WithLogger enables request-level debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithUserAgent replaces the default User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client for the given auth key. Keys carrying the ":fx"
// suffix are routed to the free endpoint; everything else goes to the paid
// one. Use WithBaseURL or WithPro to override.
func New(authKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   ProBaseURL,
		authKey:   authKey,
		userAgent: "dpl/" + version.Short(),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: zerolog.Nop(),
	}
	if strings.HasSuffix(authKey, freeKeySuffix) {
		c.baseURL = FreeBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthKey updates the auth key used for authentication.
func (c *Client) SetAuthKey(authKey string) {
	c.authKey = authKey
}

// BaseURL reports the endpoint the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	return c.httpClient.Do(req)
}

// doForm posts URL-encoded form fields and decodes the JSON response into out.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return wrap(err, ErrRequestFail)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.parseError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return wrap(err, ErrInvalidResponse)
		}
	}
	return nil
}

// doJSON sends an optional JSON body and decodes the JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, out interface{}) error {
	var body io.Reader
	contentType := ""
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return wrap(err, ErrRequestFail)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.doRequest(ctx, method, path, body, contentType)
	if err != nil {
		return wrap(err, ErrRequestFail)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.parseError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return wrap(err, ErrInvalidResponse)
		}
	}
	return nil
}

// serverError is the JSON error payload the API returns on failures.
type serverError struct {
	Message string `json:"message"`
}

func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var se serverError
	if err := json.Unmarshal(body, &se); err == nil && se.Message != "" {
		return &Error{
			Code:       ErrRequestFail.Code,
			Message:    se.Message,
			StatusCode: resp.StatusCode,
		}
	}
	return &Error{
		Code:       ErrRequestFail.Code,
		Message:    fmt.Sprintf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		StatusCode: resp.StatusCode,
	}
}
