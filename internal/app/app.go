package app

import (
	"log/slog"

	"unitconv/internal/conversion"
	"unitconv/internal/httpapi"
	"unitconv/internal/services/screen"
)

// App bundles the wired dependencies for the CLI.
type App struct {
	Config *Config
	Logger *slog.Logger
	Engine *conversion.Engine
	Remote *httpapi.Client // nil unless Config.ServerURL is set
}

// NewScreen returns a fresh screen model over the local engine.
func (a *App) NewScreen() *screen.Service {
	return screen.New(a.Engine,
		screen.WithDefaultUnit(a.Config.DefaultUnit),
		screen.WithLogger(a.Logger),
	)
}

// NewHandler returns the HTTP API handler over the local engine.
func (a *App) NewHandler() *httpapi.Handler {
	return httpapi.NewHandler(a.Engine, a.Logger, httpapi.Options{
		RPS:   a.Config.RateLimit.RPS,
		Burst: a.Config.RateLimit.Burst,
	})
}
