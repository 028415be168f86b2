// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/issueboard/internal/adapters/cas"
	_ "go.trai.ch/issueboard/internal/adapters/config"
	_ "go.trai.ch/issueboard/internal/adapters/dump"
	_ "go.trai.ch/issueboard/internal/adapters/export"
	_ "go.trai.ch/issueboard/internal/adapters/logger"
	_ "go.trai.ch/issueboard/internal/adapters/sheets"
	_ "go.trai.ch/issueboard/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/issueboard/internal/app"
	_ "go.trai.ch/issueboard/internal/engine/scanner"
)
