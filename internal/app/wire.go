package app

import (
	"path/filepath"

	"spotdrill/internal/services/gcode"
	"spotdrill/internal/services/session"
	"spotdrill/internal/store"
)

const defaultsFile = "defaults"

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *App {
	projects := store.NewProjectStore()
	defaults := store.NewDefaultsStore(filepath.Join(cfg.Home, defaultsFile))
	sessions := session.New(projects)
	return New(projects, defaults, sessions, gcode.New())
}
