// Package business contains the delivery pipeline use case
package business

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/deps"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/entities"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/metrics"
	pkgerrors "github.com/zikky0001-droid/YT-DL/pkg/errors"
)

// Caption attached to every delivered media message
const Caption = "✅ Downloaded from YouTube"

// UseCase implements deps.RelayUseCase: resolve the source URL, attempt
// remote-URL delivery, and fall back to download-then-upload
type UseCase struct {
	resolver   deps.MediaResolver
	sender     deps.MediaSender
	tempFiles  deps.TempFiles
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewUseCase creates a new relay use case
func NewUseCase(
	resolver deps.MediaResolver,
	sender deps.MediaSender,
	tempFiles deps.TempFiles,
	downloadTimeout time.Duration,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		resolver:  resolver,
		sender:    sender,
		tempFiles: tempFiles,
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
		metrics: m,
		logger:  logger.With().Str("component", "relay-usecase").Logger(),
	}
}

var _ deps.RelayUseCase = (*UseCase)(nil)

// HandleDownload resolves the source URL and delivers the media to the chat
func (u *UseCase) HandleDownload(ctx context.Context, chatID, sourceURL, quality string) (*entities.DeliveryOutcome, error) {
	media, err := u.resolver.Resolve(ctx, sourceURL, quality)
	if err != nil {
		u.metrics.RecordResolverError(resolverErrorType(err))
		return nil, err
	}

	return u.deliver(ctx, chatID, media)
}

// deliver attempts remote-URL delivery, falling back to download-then-upload
func (u *UseCase) deliver(ctx context.Context, chatID string, media entities.ResolvedMedia) (*entities.DeliveryOutcome, error) {
	video := media.IsVideo()

	result, err := u.sender.SendRemote(ctx, chatID, media.MediaURL, video, Caption)
	if err == nil {
		u.metrics.RecordDelivery(string(entities.DeliveryModeRemoteURL))
		return &entities.DeliveryOutcome{
			Mode:   entities.DeliveryModeRemoteURL,
			Result: result,
		}, nil
	}

	// Platform rejection is expected control flow, not a terminal error
	u.logger.Info().
		Str("chat_id", chatID).
		Err(err).
		Msg("Remote-URL delivery rejected, falling back to upload")

	return u.deliverByUpload(ctx, chatID, media, video)
}

// deliverByUpload downloads the media to a temp file and re-uploads the bytes.
// The temp file is released on every exit path.
func (u *UseCase) deliverByUpload(ctx context.Context, chatID string, media entities.ResolvedMedia, video bool) (*entities.DeliveryOutcome, error) {
	path, err := u.tempFiles.Allocate(media.TempExt())
	if err != nil {
		u.metrics.RecordDeliveryFailure("temp_allocate")
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("failed to allocate temp file: %v", err))
	}
	defer u.release(path)

	if err := u.download(ctx, media.MediaURL, path); err != nil {
		u.metrics.RecordDeliveryFailure("download")
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		u.metrics.RecordDeliveryFailure("temp_open")
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("failed to open downloaded file: %v", err))
	}
	defer f.Close()

	result, err := u.sender.SendUpload(ctx, chatID, filepath.Base(path), f, video, Caption)
	if err != nil {
		u.metrics.RecordDeliveryFailure("upload")
		return nil, pkgerrors.NewUploadError(fmt.Sprintf("telegram upload failed: %v", err))
	}

	u.metrics.RecordDelivery(string(entities.DeliveryModeUpload))
	return &entities.DeliveryOutcome{
		Mode:   entities.DeliveryModeUpload,
		Result: result,
	}, nil
}

// download streams the media URL into the temp file
func (u *UseCase) download(ctx context.Context, mediaURL, path string) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return pkgerrors.NewDownloadError(fmt.Sprintf("failed to create download request: %v", err))
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return pkgerrors.NewDownloadError(fmt.Sprintf("media download failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pkgerrors.NewDownloadError(fmt.Sprintf("media download failed with status %d", resp.StatusCode))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return pkgerrors.NewDownloadError(fmt.Sprintf("failed to open temp file: %v", err))
	}
	defer f.Close()

	written, err := io.Copy(f, resp.Body)
	if err != nil {
		return pkgerrors.NewDownloadError(fmt.Sprintf("media download stream failed: %v", err))
	}

	u.metrics.RecordDownload(written, time.Since(start).Seconds())

	u.logger.Info().
		Int64("bytes", written).
		Dur("elapsed", time.Since(start)).
		Msg("Media downloaded to temp file")

	return nil
}

// release removes the temp file; failures are logged and counted, never escalated
func (u *UseCase) release(path string) {
	if err := u.tempFiles.Release(path); err != nil {
		u.metrics.RecordTempCleanupFailure()
		u.logger.Warn().Err(err).Str("path", path).Msg("Temp file cleanup failed")
	}
}

// resolverErrorType labels resolver errors for metrics
func resolverErrorType(err error) string {
	switch err.(type) {
	case *pkgerrors.UpstreamError:
		return "upstream"
	case *pkgerrors.NoMediaFoundError:
		return "no_media_found"
	default:
		return "unknown"
	}
}
