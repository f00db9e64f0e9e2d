// Package domain contains all domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/zikky0001-droid/YT-DL/internal/domain/relay"
)

// Module aggregates all domain modules for fx dependency injection
var Module = fx.Module("domain",
	relay.Module,
)
