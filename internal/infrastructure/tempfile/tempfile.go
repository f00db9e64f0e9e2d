// Package tempfile contains temp file management for fallback deliveries
package tempfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager allocates and releases uniquely-named temp files.
// Every file is scoped to a single request's fallback path.
type Manager struct {
	dir    string
	logger zerolog.Logger
}

// NewManager creates a new temp file manager, ensuring the directory exists
func NewManager(dir string, logger zerolog.Logger) (*Manager, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory %s: %w", dir, err)
	}

	return &Manager{
		dir:    dir,
		logger: logger,
	}, nil
}

// Dir returns the managed temp directory
func (m *Manager) Dir() string {
	return m.dir
}

// Allocate creates an empty temp file with the given extension and returns
// its path. The UUID in the name keeps concurrent requests collision-free.
func (m *Manager) Allocate(ext string) (string, error) {
	path := filepath.Join(m.dir, "ytdl-"+uuid.NewString()+ext)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to allocate temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	m.logger.Debug().Str("path", path).Msg("Allocated temp file")
	return path, nil
}

// Release removes the temp file. Removing an already-absent file is not an
// error, so Release is idempotent.
func (m *Manager) Release(path string) error {
	if path == "" {
		return nil
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		m.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove temp file")
		return err
	}

	m.logger.Debug().Str("path", path).Msg("Released temp file")
	return nil
}
