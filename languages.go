package deepl

import (
	"context"
	"net/http"
	"net/url"
)

// Language describes one language supported by the translation endpoints.
type Language struct {
	Language          string `json:"language"`
	Name              string `json:"name"`
	SupportsFormality bool   `json:"supports_formality,omitempty"`
}

// Languages lists the languages supported as source or target of a
// translation. supports_formality is only meaningful for target languages.
func (c *Client) Languages(ctx context.Context, langType LangType) ([]Language, error) {
	q := url.Values{}
	q.Set("type", string(langType))

	var result []Language
	if err := c.doJSON(ctx, http.MethodGet, "/languages?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
