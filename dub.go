package polydub

import (
	"context"
	"net/http"
)

// DubOptions describes a dubbing request. Source selects where the
// media comes from ("youtube", "url", "file"); Language is the target
// language code, e.g. "es-ES".
type DubOptions struct {
	Source           string
	URL              string
	Language         string
	DisableWatermark *bool
}

// dubRequest is the wire shape for POST /dub.
type dubRequest struct {
	Type             string `json:"type"`
	URL              string `json:"url"`
	ToLanguage       string `json:"toLanguage"`
	DisableWatermark *bool  `json:"disableWatermark,omitempty"`
}

// Dub starts a dubbing job and returns it in its initial state. Use
// WaitForJob to await completion.
func (c *Client) Dub(ctx context.Context, opts DubOptions) (*Job, error) {
	body := dubRequest{
		Type:             opts.Source,
		URL:              opts.URL,
		ToLanguage:       opts.Language,
		DisableWatermark: opts.DisableWatermark,
	}
	var envelope jobEnvelope
	if err := c.do(ctx, http.MethodPost, "/dub", body, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// DubLanguages lists the target languages available for dubbing.
func (c *Client) DubLanguages(ctx context.Context) ([]Language, error) {
	var languages []Language
	if err := c.do(ctx, http.MethodGet, "/metadata/dub/languages", nil, nil, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}
