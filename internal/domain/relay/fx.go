// Package relay contains the relay domain module
package relay

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/zikky0001-droid/YT-DL/config"
	httpDelivery "github.com/zikky0001-droid/YT-DL/internal/domain/relay/delivery/http"
	telegramDelivery "github.com/zikky0001-droid/YT-DL/internal/domain/relay/delivery/telegram"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/deps"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/repository/http_clients/resolver"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/usecase/business"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/http/server"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/metrics"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/telegram"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/tempfile"
)

// Module provides relay domain components for fx dependency injection
var Module = fx.Module("relay",
	// Repository
	fx.Provide(resolver.NewClient),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideSender),

	// UseCase
	fx.Provide(provideUseCase),

	// Delivery - HTTP
	fx.Provide(httpDelivery.NewHandler),
	fx.Provide(httpDelivery.NewRouter),

	// Register HTTP routes
	fx.Invoke(registerRoutes),
)

// provideSender creates the Telegram media sender with raw bot
func provideSender(bot *telegram.Bot, telegramCfg *config.TelegramConfig, downloadCfg *config.DownloadConfig, logger zerolog.Logger) deps.MediaSender {
	return telegramDelivery.NewSender(bot.Raw(), telegramCfg.Timeout, downloadCfg.Timeout, logger)
}

// provideUseCase wires the delivery pipeline
func provideUseCase(
	mediaResolver deps.MediaResolver,
	sender deps.MediaSender,
	tempManager *tempfile.Manager,
	downloadCfg *config.DownloadConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.RelayUseCase {
	return business.NewUseCase(mediaResolver, sender, tempManager, downloadCfg.Timeout, m, logger)
}

// registerRoutes registers relay routes on the HTTP server
func registerRoutes(srv *server.Server, router *httpDelivery.Router) {
	router.RegisterRoutes(srv.Router)
}
