// Package validation checks arguments and configuration values for fnkit.
//
// Struct tag validation (go-playground/validator) is used for configuration
// structs such as config.Settings:
//
//	type RetrySettings struct {
//	    MaxAttempts int `mapstructure:"max_attempts" validate:"gte=1"`
//	}
//	err := validation.Validate(settings)
//
// Programmatic validation collects argument errors for helpers that reject
// bad input instead of guessing:
//
//	v := validation.New()
//	v.NonNegative("count", count)
//	if err := v.Error(); err != nil {
//	    return nil, err
//	}
package validation
