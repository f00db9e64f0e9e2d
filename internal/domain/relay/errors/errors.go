// Package errors contains domain-specific errors for the relay domain
package errors

import (
	pkgerrors "github.com/zikky0001-droid/YT-DL/pkg/errors"
)

// Domain errors for relay operations
var (
	ErrMissingFields = pkgerrors.NewValidationError("Missing chat_id or url")
	ErrMissingConfig = pkgerrors.NewConfigurationError("missing required configuration")
)
