// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/zikky0001-droid/YT-DL/config"
	"github.com/zikky0001-droid/YT-DL/internal/domain"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, metrics, telegram bot, temp files, HTTP server)
		infrastructure.Module,

		// Domain (relay pipeline)
		domain.Module,
	)
}
