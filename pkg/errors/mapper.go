package errors

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Mapper maps pipeline errors to HTTP status codes
type Mapper struct {
	logger zerolog.Logger
}

// NewMapper creates a new error mapper
func NewMapper(logger zerolog.Logger) *Mapper {
	return &Mapper{logger: logger}
}

// MapErrorToHTTP maps an error to HTTP status code and message
func (m *Mapper) MapErrorToHTTP(err error) (int, string) {
	if err == nil {
		return fasthttp.StatusOK, ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fasthttp.StatusBadRequest, validationErr.Error()
	}

	var configErr *ConfigurationError
	if errors.As(err, &configErr) {
		m.logger.Error().Err(err).Msg("configuration error")
		return fasthttp.StatusInternalServerError, configErr.Error()
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return fasthttp.StatusInternalServerError, upstreamErr.Error()
	}

	var noMediaErr *NoMediaFoundError
	if errors.As(err, &noMediaErr) {
		return fasthttp.StatusInternalServerError, noMediaErr.Error()
	}

	var downloadErr *DownloadError
	if errors.As(err, &downloadErr) {
		return fasthttp.StatusInternalServerError, downloadErr.Error()
	}

	var uploadErr *UploadError
	if errors.As(err, &uploadErr) {
		return fasthttp.StatusInternalServerError, uploadErr.Error()
	}

	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		m.logger.Error().Err(err).Msg("internal server error")
		return fasthttp.StatusInternalServerError, internalErr.Error()
	}

	m.logger.Error().Err(err).Msg("unknown error")
	return fasthttp.StatusInternalServerError, "internal server error"
}
