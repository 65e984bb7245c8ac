package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/logging"
)

// Config holds runtime settings for the tutorbook CLI.
type Config struct {
	UsersFile        string `json:"users_file" yaml:"users_file" validate:"required"`
	ReservationsFile string `json:"reservations_file" yaml:"reservations_file" validate:"required,nefield=UsersFile"`
	CatalogFile      string `json:"catalog_file" yaml:"catalog_file"`
	LogLevel         string `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogBackend       string `json:"log_backend" yaml:"log_backend" validate:"oneof=slog zap"`
}

// LoadDefaults populates c with the values used when nothing is configured.
func (c *Config) LoadDefaults() {
	c.UsersFile = common.DefaultUsersFile
	c.ReservationsFile = common.DefaultReservationsFile
	c.CatalogFile = ""
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
}

var validate = validator.New()

// Validate reports the first invalid field, if any.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s=%q fails %q", fe.Field(), fe.Value(), fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// LoadConfig builds a Config from defaults, then the optional config file,
// then flags found in args (usually os.Args[1:]), and validates the result.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
