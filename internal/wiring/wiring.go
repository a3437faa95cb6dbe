// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/maven3/internal/adapters/cas"
	_ "go.trai.ch/maven3/internal/adapters/config"
	_ "go.trai.ch/maven3/internal/adapters/fs"
	_ "go.trai.ch/maven3/internal/adapters/logger"
	_ "go.trai.ch/maven3/internal/adapters/shell"
	_ "go.trai.ch/maven3/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/maven3/internal/app"
	_ "go.trai.ch/maven3/internal/engine/buildinfo"
	_ "go.trai.ch/maven3/internal/engine/cmdline"
)
