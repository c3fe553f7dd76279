package app

import (
	"spotdrill/internal/domain"
	"spotdrill/internal/services/session"
	"spotdrill/internal/store"
)

// App bundles the stores and services the CLI commands run against.
type App struct {
	Projects domain.ProjectStore
	Defaults *store.DefaultsStore
	Sessions *session.Service
	GCode    domain.Generator
}

func New(projects domain.ProjectStore, defaults *store.DefaultsStore, sessions *session.Service, gen domain.Generator) *App {
	return &App{
		Projects: projects,
		Defaults: defaults,
		Sessions: sessions,
		GCode:    gen,
	}
}
