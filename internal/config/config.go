// Package config handles reading and writing .closingportal/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wctsmart/closingportal/internal/portal"
)

// Config is the top-level structure for .closingportal/config.yaml.
type Config struct {
	Version        int             `yaml:"version"`
	Brand          BrandConfig     `yaml:"brand"`
	ExperienceGate GateConfig      `yaml:"experience_gate"`
	Dashboard      DashboardConfig `yaml:"dashboard"`
	Log            LogConfig       `yaml:"log"`
}

// BrandConfig is the title company's theme. It is passed through to the
// views untouched.
type BrandConfig struct {
	LogoName     string `yaml:"logo_name"`
	PrimaryColor string `yaml:"primary_color"`
	AccentColor  string `yaml:"accent_color"`
	LightBlue    string `yaml:"light_blue"`
	GrayBlue     string `yaml:"gray_blue"`
	HeaderFont   string `yaml:"header_font"`
	BodyFont     string `yaml:"body_font"`
	ContactEmail string `yaml:"contact_email"`
	LegalName    string `yaml:"legal_name"`
}

// GateConfig controls the experience-selection screen.
type GateConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DashboardConfig controls the post-closing dashboard clock.
type DashboardConfig struct {
	InitialDaysRemaining   int `yaml:"initial_days_remaining"`
	SimulatedDaysRemaining int `yaml:"simulated_days_remaining"`
}

// LogConfig controls the session event log.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // defaults to the project root
}

const configDir = ".closingportal"
const configFile = "config.yaml"

// Path returns the config file location for the project directory dir.
func Path(dir string) string {
	return filepath.Join(dir, configDir, configFile)
}

// ReadConfig reads .closingportal/config.yaml from the given project directory.
// dir is the project root (not .closingportal/ itself).
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Start from defaults so fields missing from older files keep sane values.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .closingportal/config.yaml in the given project directory.
// Creates the .closingportal/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with the World Class Title brand
// and the stock portal behaviour.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Brand: BrandConfig{
			LogoName:     "WCT Smart",
			PrimaryColor: "#0B2545",
			AccentColor:  "#F2C14E",
			LightBlue:    "#DCEAF7",
			GrayBlue:     "#5C6F82",
			HeaderFont:   "Montserrat",
			BodyFont:     "Inter",
			ContactEmail: "closings@worldclasstitle.example",
			LegalName:    "World Class Title Agency, LLC",
		},
		ExperienceGate: GateConfig{
			Enabled: true,
		},
		Dashboard: DashboardConfig{
			InitialDaysRemaining:   portal.InitialDaysRemaining,
			SimulatedDaysRemaining: portal.SimulatedDaysRemaining,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// Validate checks the values the controller depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.Brand.LogoName == "" {
		errs = append(errs, errors.New("brand.logo_name is required"))
	}
	if c.Dashboard.InitialDaysRemaining <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.initial_days_remaining must be positive, got %d", c.Dashboard.InitialDaysRemaining))
	}
	if c.Dashboard.SimulatedDaysRemaining <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.simulated_days_remaining must be positive, got %d", c.Dashboard.SimulatedDaysRemaining))
	}
	if c.Dashboard.SimulatedDaysRemaining > c.Dashboard.InitialDaysRemaining {
		errs = append(errs, fmt.Errorf("dashboard.simulated_days_remaining (%d) exceeds initial_days_remaining (%d)",
			c.Dashboard.SimulatedDaysRemaining, c.Dashboard.InitialDaysRemaining))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// PortalOptions translates the config into controller options.
func (c *Config) PortalOptions() portal.Options {
	return portal.Options{
		GateEnabled:            c.ExperienceGate.Enabled,
		InitialDaysRemaining:   c.Dashboard.InitialDaysRemaining,
		SimulatedDaysRemaining: c.Dashboard.SimulatedDaysRemaining,
	}
}

// LogDir returns where the event log lives, falling back to projectRoot.
func (c *Config) LogDir(projectRoot string) string {
	if c.Log.Dir == "" {
		return projectRoot
	}
	if filepath.IsAbs(c.Log.Dir) {
		return c.Log.Dir
	}
	return filepath.Join(projectRoot, c.Log.Dir)
}
