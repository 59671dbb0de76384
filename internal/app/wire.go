package app

import (
	"io"
	"net/http"

	"unitconv/internal/conversion"
	"unitconv/internal/httpapi"
)

// New constructs the dependency graph from cfg. Logs go to logOut.
func New(cfg *Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)

	// The reference table is built once per process; engines only hold a
	// pointer to it.
	engine := conversion.New(conversion.Reference(), conversion.WithScale(cfg.Scale))

	var remote *httpapi.Client
	if cfg.ServerURL != "" {
		remote = httpapi.NewClient(cfg.ServerURL, &http.Client{Timeout: cfg.ClientTimeout})
	}

	logger.Debug("app wired",
		"scale", cfg.Scale,
		"default_unit", cfg.DefaultUnit.String(),
		"server", cfg.ServerURL,
	)

	return &App{
		Config: cfg,
		Logger: logger,
		Engine: engine,
		Remote: remote,
	}, nil
}
