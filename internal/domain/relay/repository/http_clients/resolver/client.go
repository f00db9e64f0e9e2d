// Package resolver contains the HTTP client for the media-info API
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/zikky0001-droid/YT-DL/config"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/deps"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/entities"
	pkgerrors "github.com/zikky0001-droid/YT-DL/pkg/errors"
)

const (
	// maxPayloadBytes bounds upstream payloads carried into errors and logs
	maxPayloadBytes = 2048
	// maxBodyBytes bounds how much of the resolver response is read at all
	maxBodyBytes = 4 << 20
)

// Client calls the external media-info service
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new resolver client
func NewClient(cfg *config.ResolverConfig, logger zerolog.Logger) deps.MediaResolver {
	client := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("component", "resolver").Logger(),
	}

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Msg("Resolver client initialized")

	return client
}

// extractRule probes one candidate field position in the resolver payload
type extractRule struct {
	name string
	get  func(payload map[string]interface{}) string
}

// mediaURLRules is the ordered probing list; the first non-empty match wins
var mediaURLRules = []extractRule{
	{"data.download_url", func(p map[string]interface{}) string { return nestedString(p, "data", "download_url") }},
	{"data.url", func(p map[string]interface{}) string { return nestedString(p, "data", "url") }},
	{"download_url", func(p map[string]interface{}) string { return nestedString(p, "download_url") }},
	{"url", func(p map[string]interface{}) string { return nestedString(p, "url") }},
	{"data.formats[0].url", func(p map[string]interface{}) string { return firstFormatString(p, "data", "url") }},
	{"formats[0].url", func(p map[string]interface{}) string { return firstFormatString(p, "", "url") }},
}

// mimeTypeRules probes for an authoritative content type next to the media URL
var mimeTypeRules = []extractRule{
	{"data.mime_type", func(p map[string]interface{}) string { return nestedString(p, "data", "mime_type") }},
	{"mime_type", func(p map[string]interface{}) string { return nestedString(p, "mime_type") }},
	{"data.formats[0].mime_type", func(p map[string]interface{}) string { return firstFormatString(p, "data", "mime_type") }},
	{"formats[0].mime_type", func(p map[string]interface{}) string { return firstFormatString(p, "", "mime_type") }},
}

// Resolve implements deps.MediaResolver
func (c *Client) Resolve(ctx context.Context, sourceURL, quality string) (entities.ResolvedMedia, error) {
	infoURL := fmt.Sprintf("%s/youtube-media/info?url=%s", c.baseURL, url.QueryEscape(sourceURL))
	if quality != "" {
		infoURL += "&quality=" + url.QueryEscape(quality)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return entities.ResolvedMedia{}, fmt.Errorf("failed to create resolver request: %w", err)
	}
	req.Header.Set("x-api-market-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Resolver request failed")
		return entities.ResolvedMedia{}, pkgerrors.NewUpstreamError(0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return entities.ResolvedMedia{}, pkgerrors.NewUpstreamError(resp.StatusCode, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Int("status_code", resp.StatusCode).
			Msg("Resolver returned non-success status")
		return entities.ResolvedMedia{}, pkgerrors.NewUpstreamError(resp.StatusCode, pkgerrors.Truncate(string(body), maxPayloadBytes))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.ResolvedMedia{}, pkgerrors.NewUpstreamError(resp.StatusCode, pkgerrors.Truncate(string(body), maxPayloadBytes))
	}

	media := extractMedia(payload)
	if media.MediaURL == "" {
		c.logger.Warn().Msg("No media URL found in resolver payload")
		return entities.ResolvedMedia{}, pkgerrors.NewNoMediaFoundError(pkgerrors.Truncate(string(body), maxPayloadBytes))
	}

	c.logger.Debug().
		Str("mime_type", media.MimeType).
		Msg("Resolved media URL")

	return media, nil
}

// extractMedia evaluates the rule tables against the payload
func extractMedia(payload map[string]interface{}) entities.ResolvedMedia {
	media := entities.ResolvedMedia{}

	for _, rule := range mediaURLRules {
		if v := rule.get(payload); v != "" {
			media.MediaURL = v
			break
		}
	}

	if media.MediaURL != "" {
		for _, rule := range mimeTypeRules {
			if v := rule.get(payload); v != "" {
				media.MimeType = v
				break
			}
		}
	}

	return media
}

// nestedString walks a key path through nested JSON objects and returns the
// string at the end, or empty when any step is missing or mistyped
func nestedString(payload map[string]interface{}, keys ...string) string {
	current := payload
	for i, key := range keys {
		value, ok := current[key]
		if !ok {
			return ""
		}

		if i == len(keys)-1 {
			s, _ := value.(string)
			return s
		}

		current, ok = value.(map[string]interface{})
		if !ok {
			return ""
		}
	}
	return ""
}

// firstFormatString returns field from the first entry of a "formats" array,
// nested under container when it is non-empty
func firstFormatString(payload map[string]interface{}, container, field string) string {
	current := payload
	if container != "" {
		nested, ok := payload[container].(map[string]interface{})
		if !ok {
			return ""
		}
		current = nested
	}

	formats, ok := current["formats"].([]interface{})
	if !ok || len(formats) == 0 {
		return ""
	}

	first, ok := formats[0].(map[string]interface{})
	if !ok {
		return ""
	}

	s, _ := first[field].(string)
	return s
}
