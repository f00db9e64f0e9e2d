// Package entities contains domain entities
package entities

import "strings"

// ResolvedMedia is a direct media URL produced by the resolver for one
// request. It is never persisted and is discarded after delivery.
type ResolvedMedia struct {
	MediaURL string
	// MimeType is the authoritative content type reported by the resolver,
	// empty when the resolver did not provide one.
	MimeType string
}

// IsVideo reports whether the media should be sent through the video path.
// An authoritative MIME type wins; without one the classification falls
// back to a substring heuristic on the URL, a documented limitation.
func (m ResolvedMedia) IsVideo() bool {
	if m.MimeType != "" {
		return strings.HasPrefix(strings.ToLower(m.MimeType), "video/")
	}

	lower := strings.ToLower(m.MediaURL)
	return strings.Contains(lower, ".mp4") || strings.Contains(lower, "video")
}

// TempExt returns the temp file extension for the fallback download
func (m ResolvedMedia) TempExt() string {
	if m.IsVideo() {
		return ".mp4"
	}
	return ".bin"
}

// DeliveryMode identifies how the media reached the chat
type DeliveryMode string

const (
	// DeliveryModeRemoteURL means the platform accepted the media URL by reference
	DeliveryModeRemoteURL DeliveryMode = "remote_url"
	// DeliveryModeUpload means the media was downloaded and re-uploaded as bytes
	DeliveryModeUpload DeliveryMode = "upload"
)

// DeliveryOutcome is the terminal result of one delivery attempt.
// Result carries the platform's message payload for the response body.
type DeliveryOutcome struct {
	Mode   DeliveryMode
	Result interface{}
}
