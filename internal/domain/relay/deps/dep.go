// Package deps contains interface definitions for the relay domain dependencies
package deps

import (
	"context"
	"io"

	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/entities"
)

// MediaResolver defines interface for resolving a source URL into a direct media URL
type MediaResolver interface {
	// Resolve calls the media-info API and extracts a playable media URL.
	// quality is optional and passed through to the resolver when set.
	Resolve(ctx context.Context, sourceURL, quality string) (entities.ResolvedMedia, error)
}

// MediaSender defines interface for sending media into a chat via the messaging platform
type MediaSender interface {
	// SendRemote sends the media URL by reference, letting the platform
	// fetch it server-side. A platform rejection is returned as an error.
	SendRemote(ctx context.Context, chatID, mediaURL string, video bool, caption string) (interface{}, error)

	// SendUpload sends the media as multipart bytes read from data
	SendUpload(ctx context.Context, chatID, filename string, data io.Reader, video bool, caption string) (interface{}, error)
}

// TempFiles defines interface for temp file lifecycle during fallback deliveries
type TempFiles interface {
	// Allocate creates a uniquely-named temp file with the given extension
	Allocate(ext string) (string, error)

	// Release removes the file if present; removing an absent file is not an error
	Release(path string) error
}

// RelayUseCase defines interface for the download-and-deliver pipeline
type RelayUseCase interface {
	// HandleDownload resolves the source URL and delivers the media to the chat
	HandleDownload(ctx context.Context, chatID, sourceURL, quality string) (*entities.DeliveryOutcome, error)
}
