package deepl

import (
	"context"
	"net/url"
)

// Usage reports account consumption within the current billing period.
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// Usage returns the characters translated and the account limit for the
// current billing period.
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	var result Usage
	if err := c.doForm(ctx, "/usage", url.Values{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
