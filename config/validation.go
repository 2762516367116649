package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

var supportedDrivers = map[string]bool{
	"postgres": true,
	"sqlite":   true,
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "ServerPort", Message: "is required"})
	}

	if !supportedDrivers[cfg.DBDriver] {
		errs = append(errs, ValidationError{Field: "DBDriver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{Field: "DBHost", Message: "is required for postgres"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: "DBName", Message: "is required for postgres"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{Field: "DBUser", Message: "is required for postgres"})
		}
		if cfg.Environment == Production && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "DBPassword", Message: "db_password secret is required"})
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "SQLitePath", Message: "is required for sqlite"})
		}
	}

	if cfg.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "RateLimit", Message: "must not be negative"})
	}
	if cfg.RateLimit > 0 && cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{Field: "RateLimitWindow", Message: "must be positive when rate limiting is on"})
	}
	if cfg.CacheTTL < 0 {
		errs = append(errs, ValidationError{Field: "CacheTTL", Message: "must not be negative"})
	}
	if (cfg.S3AccessKeyID == "") != (cfg.S3SecretAccessKey == "") {
		errs = append(errs, ValidationError{Field: "S3AccessKeyID", Message: "access key and secret must be set together"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
