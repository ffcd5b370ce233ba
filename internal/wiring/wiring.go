// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cssmerge/internal/adapters/config"
	_ "go.trai.ch/cssmerge/internal/adapters/fs"
	_ "go.trai.ch/cssmerge/internal/adapters/httpclient"
	_ "go.trai.ch/cssmerge/internal/adapters/logger"
	_ "go.trai.ch/cssmerge/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/cssmerge/internal/app"
	_ "go.trai.ch/cssmerge/internal/engine/fetcher"
)
