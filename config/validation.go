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

// ValidateConfig checks that the loaded configuration is usable. Most
// settings have working defaults; validation catches the combinations that
// would only fail later at runtime.
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{"DB_PATH", "required when DB_DRIVER is sqlite"})
		}
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "required when DB_DRIVER is postgres"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "required when DB_DRIVER is postgres"})
		}
		if IsProduction() && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "required in production"})
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q (want sqlite or postgres)", cfg.DBDriver)})
	}

	if IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		errs = append(errs, ValidationError{"JWT_SECRET", "must be set to a non-default value in production"})
	}

	if cfg.LookupCacheTTL <= 0 {
		errs = append(errs, ValidationError{"LOOKUP_CACHE_TTL", "must be positive"})
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
	}

	return nil
}
