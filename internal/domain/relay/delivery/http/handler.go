// Package http contains the relay HTTP delivery layer
package http

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/zikky0001-droid/YT-DL/config"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/deps"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/dto"
	relayerrors "github.com/zikky0001-droid/YT-DL/internal/domain/relay/errors"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/metrics"
	pkgerrors "github.com/zikky0001-droid/YT-DL/pkg/errors"
	"github.com/zikky0001-droid/YT-DL/pkg/httputil"
)

// Handler handles relay HTTP requests
type Handler struct {
	useCase  deps.RelayUseCase
	telegram *config.TelegramConfig
	resolver *config.ResolverConfig
	mapper   *pkgerrors.Mapper
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewHandler creates a new relay handler
func NewHandler(
	useCase deps.RelayUseCase,
	telegram *config.TelegramConfig,
	resolver *config.ResolverConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Handler {
	handlerLogger := logger.With().Str("handler", "ytdl").Logger()
	return &Handler{
		useCase:  useCase,
		telegram: telegram,
		resolver: resolver,
		mapper:   pkgerrors.NewMapper(handlerLogger),
		metrics:  m,
		logger:   handlerLogger,
	}
}

// Handle handles POST /api/ytdl
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	defer func() {
		h.metrics.RecordRequest(time.Since(start).Seconds())
	}()

	var req dto.DownloadRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, relayerrors.ErrMissingFields)
		return
	}

	// Input validation happens before any outbound call
	if req.ChatID == "" || req.URL == "" {
		h.writeError(ctx, relayerrors.ErrMissingFields)
		return
	}

	// Secrets are logged by presence only, never by value
	if h.telegram.Token == "" || h.resolver.APIKey == "" {
		h.logger.Error().
			Bool("telegram_token_present", h.telegram.Token != "").
			Bool("resolver_key_present", h.resolver.APIKey != "").
			Msg("Missing required configuration")
		h.writeError(ctx, relayerrors.ErrMissingConfig)
		return
	}

	h.logger.Info().
		Str("chat_id", string(req.ChatID)).
		Str("url", req.URL).
		Msg("Processing relay request")

	outcome, err := h.useCase.HandleDownload(ctx, string(req.ChatID), req.URL, req.Quality)
	if err != nil {
		h.logger.Error().Err(err).Str("chat_id", string(req.ChatID)).Msg("Relay request failed")
		h.writeError(ctx, err)
		return
	}

	h.logger.Info().
		Str("chat_id", string(req.ChatID)).
		Str("mode", string(outcome.Mode)).
		Dur("elapsed", time.Since(start)).
		Msg("Relay request completed")

	httputil.WriteJSON(ctx, fasthttp.StatusOK, dto.DownloadResponse{
		OK:     true,
		Result: outcome.Result,
	})
}

// Health handles GET / and GET /health liveness checks
func (h *Handler) Health(ctx *fasthttp.RequestCtx) {
	httputil.WriteJSON(ctx, fasthttp.StatusOK, dto.HealthResponse{Status: "ok"})
}

// writeError maps pipeline errors to the response shape, attaching bounded
// upstream context where available
func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	h.metrics.RecordRequestError(errorType(err))

	resp := dto.ErrorResponse{Error: message}

	var upstreamErr *pkgerrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		resp.Details = upstreamErr.Body
	}

	var noMediaErr *pkgerrors.NoMediaFoundError
	if errors.As(err, &noMediaErr) {
		resp.Raw = noMediaErr.RawPayload
	}

	httputil.WriteJSON(ctx, status, resp)
}

// errorType labels request errors for metrics
func errorType(err error) string {
	switch err.(type) {
	case *pkgerrors.ValidationError:
		return "validation"
	case *pkgerrors.ConfigurationError:
		return "configuration"
	case *pkgerrors.UpstreamError:
		return "upstream"
	case *pkgerrors.NoMediaFoundError:
		return "no_media_found"
	case *pkgerrors.DownloadError:
		return "download"
	case *pkgerrors.UploadError:
		return "upload"
	default:
		return "internal"
	}
}
