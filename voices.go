package polydub

import (
	"context"
	"net/http"
	"net/url"
)

// CloneVoiceOptions describes a voice-cloning request. SourceURL points
// at the uploaded voice sample (see CreateVoiceUploadURL).
type CloneVoiceOptions struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SourceURL   string `json:"sourceUrl"`
}

// SynthesizeOptions describes a text-to-speech request.
type SynthesizeOptions struct {
	Text    string   `json:"text"`
	VoiceID string   `json:"voiceId"`
	Format  string   `json:"format,omitempty"`
	Speed   *float64 `json:"speed,omitempty"`
}

// VoiceOptions carries the mutable fields of a voice record.
type VoiceOptions struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// UploadURLOptions requests a pre-signed upload destination for a voice
// sample file.
type UploadURLOptions struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType,omitempty"`
}

// CloneVoice starts a voice-cloning job and returns it in its initial
// state.
func (c *Client) CloneVoice(ctx context.Context, opts CloneVoiceOptions) (*Job, error) {
	var envelope jobEnvelope
	if err := c.do(ctx, http.MethodPost, "/voice/clone", opts, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// Synthesize starts a text-to-speech job and returns it in its initial
// state.
func (c *Client) Synthesize(ctx context.Context, opts SynthesizeOptions) (*Job, error) {
	var envelope jobEnvelope
	if err := c.do(ctx, http.MethodPost, "/voice/synthesize", opts, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Job, nil
}

// ListVoices lists the voices available to the account.
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	var voices []Voice
	if err := c.do(ctx, http.MethodGet, "/voices", nil, nil, &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

// GetVoice fetches a single voice by id.
func (c *Client) GetVoice(ctx context.Context, voiceID string) (*Voice, error) {
	var voice Voice
	if err := c.do(ctx, http.MethodGet, "/voices/"+url.PathEscape(voiceID), nil, nil, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// CreateVoice registers a new voice record.
func (c *Client) CreateVoice(ctx context.Context, opts VoiceOptions) (*Voice, error) {
	var voice Voice
	if err := c.do(ctx, http.MethodPost, "/voices", opts, nil, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// UpdateVoice updates a voice record.
func (c *Client) UpdateVoice(ctx context.Context, voiceID string, opts VoiceOptions) (*Voice, error) {
	var voice Voice
	if err := c.do(ctx, http.MethodPut, "/voices/"+url.PathEscape(voiceID), opts, nil, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// DeleteVoice deletes a voice and reports whether the server
// acknowledged the deletion.
func (c *Client) DeleteVoice(ctx context.Context, voiceID string) (bool, error) {
	body := map[string]string{"voiceId": voiceID}
	var result successResponse
	if err := c.do(ctx, http.MethodDelete, "/voices/"+url.PathEscape(voiceID), body, nil, &result); err != nil {
		return false, err
	}
	return result.Success, nil
}

// CreateVoiceUploadURL requests a pre-signed destination for uploading
// a voice sample.
func (c *Client) CreateVoiceUploadURL(ctx context.Context, opts UploadURLOptions) (*UploadTarget, error) {
	var target UploadTarget
	if err := c.do(ctx, http.MethodPost, "/voices/upload-url", opts, nil, &target); err != nil {
		return nil, err
	}
	return &target, nil
}
