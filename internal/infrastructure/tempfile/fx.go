package tempfile

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/zikky0001-droid/YT-DL/config"
)

// Module provides temp file manager for fx DI
var Module = fx.Module("tempfile",
	fx.Provide(provideManager),
)

// provideManager creates temp file manager from config
func provideManager(cfg *config.DownloadConfig, logger zerolog.Logger) (*Manager, error) {
	return NewManager(cfg.TempDir, logger)
}
