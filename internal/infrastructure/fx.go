// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/http"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/logger"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/metrics"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/telegram"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/tempfile"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	telegram.Module,
	tempfile.Module,
	http.Module,
)
