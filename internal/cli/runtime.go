package cli

import (
	"fmt"
	"os"

	"github.com/wctsmart/closingportal/internal/config"
	"github.com/wctsmart/closingportal/internal/log"
	"github.com/wctsmart/closingportal/internal/portal"
)

// runtime is one portal session with its config and event log.
type runtime struct {
	cfg        *config.Config
	controller *portal.Controller
	logger     *log.Logger // nil when logging is off
}

// resolveDir returns dir, or the working directory when dir is empty.
func resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return wd, nil
}

// loadConfig reads the project config, falling back to defaults when the
// file is missing or unreadable. An invalid config is an error.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.ReadConfig(dir)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openRuntime loads config for dir and starts a session.
func openRuntime(dir string, disableLog bool) (*runtime, error) {
	root, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}
	var sink portal.EventSink
	if cfg.Log.Enabled && !disableLog {
		logger, err := log.NewLogger(cfg.LogDir(root))
		if err != nil {
			return nil, err
		}
		rt.logger = logger
		sink = log.NewSessionSink(logger)
	}
	rt.controller = portal.NewController(cfg.PortalOptions(), sink)
	return rt, nil
}

// close ends the session and reports any event log failure.
func (rt *runtime) close() error {
	if err := rt.controller.Close(); err != nil {
		return fmt.Errorf("session %s: %w", rt.controller.ID(), err)
	}
	return nil
}
