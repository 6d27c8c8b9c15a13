package config

import "errors"

// validate checks the merged configuration for fields that have no sensible
// fallback. Secrets are not validated here: they fall back to the documented
// development defaults instead.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}

	if c.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}

	return errors.Join(errs...)
}
