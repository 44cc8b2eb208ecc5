package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/dagaz/internal/blob"
	"github.com/starford/dagaz/internal/planner"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Storage StorageConfig     `yaml:"storage"`
	Planner PlannerConfig     `yaml:"planner"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Planner.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// StorageConfig selects the blob store driver and its location.
// Driver is one of "file" (directory of per-key files), "bolt"
// (single-file bbolt database), "sqlite", or "memory" (non-durable).
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required,
			validation.In(blob.DriverFile, blob.DriverBolt, blob.DriverSQLite, blob.DriverMemory)),
	); err != nil {
		return err
	}
	if c.Driver != blob.DriverMemory && c.Path == "" {
		return fmt.Errorf("storage: driver %q requires a path", c.Driver)
	}
	return nil
}

// PlannerConfig tunes view computation and invite export.
type PlannerConfig struct {
	SummaryLimit          int `yaml:"summary_limit"`
	InviteDurationMinutes int `yaml:"invite_duration_minutes"`
}

// Validate validates the planner configuration.
func (c *PlannerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SummaryLimit, validation.Required, validation.Min(1)),
		validation.Field(&c.InviteDurationMinutes, validation.Required, validation.Min(1), validation.Max(24*60)),
	)
}

// InviteDuration returns the configured invite block length.
func (c *PlannerConfig) InviteDuration() time.Duration {
	return time.Duration(c.InviteDurationMinutes) * time.Minute
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local use.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Storage: StorageConfig{
			Driver: blob.DriverFile,
			Path:   "./data",
		},
		Planner: PlannerConfig{
			SummaryLimit:          planner.DefaultSummaryLimit,
			InviteDurationMinutes: int(planner.DefaultInviteDuration.Minutes()),
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
