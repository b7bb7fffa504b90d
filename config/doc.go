// Package config loads the fnkit Settings from a YAML file, a .env file and
// the environment.
//
// It uses Viper for files and godotenv for .env files. Environment variables
// carrying the FNKIT_ prefix override file values; underscores map to nested
// keys, so FNKIT_RETRY_MAX_ATTEMPTS sets retry.max_attempts.
//
// # Usage
//
//	s, err := config.Load(config.WithConfigFile("fnkit.yml"))
//	if err != nil {
//	    return err
//	}
//	logger.Init(s.Logging)
//	v, err := resilience.Retry(ctx, s.RetryConfig(), fetch)
//
// LoadConfig decodes into any struct for applications that embed Settings in
// their own configuration.
package config
