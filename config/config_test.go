package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	apperrors "github.com/kbukum/fnkit/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Retry.MaxAttempts != 3 || s.Retry.InitialBackoff != 100*time.Millisecond || s.Retry.Strategy != "exponential" {
		t.Errorf("unexpected retry defaults: %+v", s.Retry)
	}
	if s.Concurrency.MaxTotal != 50 || s.Concurrency.PerKey != 3 {
		t.Errorf("unexpected concurrency defaults: %+v", s.Concurrency)
	}
	if s.RateLimit.Rate != 10 || s.RateLimit.Burst != 20 {
		t.Errorf("unexpected rate limit defaults: %+v", s.RateLimit)
	}
	if s.Timeout.Default != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", s.Timeout.Default)
	}
	if s.Logging.Level != "warn" {
		t.Errorf("expected warn level, got %q", s.Logging.Level)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		errMsg string
	}{
		{"per key above total", func(s *Settings) { s.Concurrency.PerKey = 60 }, "concurrency.per_key"},
		{"backoff factor below one", func(s *Settings) { s.Retry.BackoffFactor = 0.5 }, "retry.backoff_factor: must be at least 1"},
		{"max backoff below initial", func(s *Settings) { s.Retry.MaxBackoff = time.Millisecond }, "retry.max_backoff"},
		{"unknown strategy", func(s *Settings) { s.Retry.Strategy = "linear" }, "retry.strategy: must be one of"},
		{"jitter above one", func(s *Settings) { s.Retry.Jitter = 2 }, "retry.jitter: must be at most 1"},
		{"negative rate", func(s *Settings) { s.RateLimit.Rate = -1 }, "rate_limit.rate: must be greater than 0"},
		{"invalid log level", func(s *Settings) { s.Logging.Level = "loud" }, "(got: loud)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.IsAppError(err) {
				t.Errorf("expected an AppError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fnkit.yml", `
logging:
  level: debug
  format: json
retry:
  max_attempts: 6
  initial_backoff: 1s
  max_backoff: 1m
  strategy: quadratic
concurrency:
  per_key: 5
  max_wait: 250ms
rate_limit:
  rate: 2.5
`)

	s, err := Load(WithConfigFile(path), WithFileSystem(OSFileSystem{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", s.Logging)
	}
	if s.Retry.MaxAttempts != 6 || s.Retry.InitialBackoff != time.Second || s.Retry.MaxBackoff != time.Minute {
		t.Errorf("unexpected retry: %+v", s.Retry)
	}
	if s.Concurrency.PerKey != 5 || s.Concurrency.MaxTotal != 50 || s.Concurrency.MaxWait != 250*time.Millisecond {
		t.Errorf("unexpected concurrency: %+v", s.Concurrency)
	}
	if s.RateLimit.Rate != 2.5 || s.RateLimit.Burst != 20 {
		t.Errorf("unexpected rate limit: %+v", s.RateLimit)
	}

	rc := s.RetryConfig()
	if rc.Strategy == nil || rc.Strategy(2) != 4*time.Second {
		t.Errorf("expected quadratic strategy over 1s")
	}
	if cc := s.ConcurrencyConfig("fetch"); cc.Name != "fetch" || cc.PerKey != 5 {
		t.Errorf("unexpected concurrency config: %+v", cc)
	}
	if rl := s.RateLimiterConfig("api"); rl.Name != "api" || rl.Rate != 2.5 {
		t.Errorf("unexpected rate limiter config: %+v", rl)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fnkit.yml", "retry:\n  max_attempts: -2\n")

	_, err := Load(WithConfigFile(path))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(WithConfigFile("/nonexistent/fnkit.yml"), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing files, got %v", err)
	}
	if s.Retry.MaxAttempts != 3 {
		t.Errorf("expected default max attempts, got %d", s.Retry.MaxAttempts)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fnkit.yml", "retry:\n  max_attempts: 4\n")
	t.Setenv("FNKIT_RETRY_MAX_ATTEMPTS", "9")
	t.Setenv("FNKIT_RATE_LIMIT_BURST", "7")
	t.Setenv("FNKIT_TIMEOUT_DEFAULT", "5s")

	s, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Retry.MaxAttempts != 9 {
		t.Errorf("expected env to override file, got %d", s.Retry.MaxAttempts)
	}
	if s.RateLimit.Burst != 7 {
		t.Errorf("expected burst 7, got %d", s.RateLimit.Burst)
	}
	if s.Timeout.Default != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", s.Timeout.Default)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "FNKIT_CONCURRENCY_MAX_TOTAL=12\n")
	t.Cleanup(func() { os.Unsetenv("FNKIT_CONCURRENCY_MAX_TOTAL") })

	s, err := Load(WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Concurrency.MaxTotal != 12 {
		t.Errorf("expected max_total from .env, got %d", s.Concurrency.MaxTotal)
	}
}

func TestLoadConfigIntoCustomStruct(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yml", "endpoint: https://example.org\nretry:\n  max_attempts: 2\n")

	type appConfig struct {
		Settings `yaml:",inline" mapstructure:",squash"`
		Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	}

	var cfg appConfig
	if err := LoadConfig(&cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Endpoint != "https://example.org" || cfg.Retry.MaxAttempts != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/worker.yml": true,
		"./config/config.yml": true,
		"../.env.worker":      true,
		"./.env":              true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles("worker", LoaderConfig{})
	if files.ConfigFile != "./config/worker.yml" {
		t.Errorf("expected ./config/worker.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "../.env.worker" {
		t.Errorf("expected ../.env.worker, got %q", files.EnvFile)
	}

	files = resolver.ResolveFiles("worker", LoaderConfig{ConfigFile: "explicit.yml"})
	if files.ConfigFile != "explicit.yml" {
		t.Errorf("expected explicit path to win, got %q", files.ConfigFile)
	}

	files = resolver.ResolveFiles("other", LoaderConfig{})
	if files.ConfigFile != "./config/config.yml" || files.EnvFile != "./.env" {
		t.Errorf("expected fallbacks, got %+v", files)
	}
}

func TestLoadConfigUsesFileSystem(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env.svc": true}}
	var s Settings
	if err := LoadConfig(&s, WithFileSystem(fs), WithName("svc")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !slices.Equal(fs.loaded, []string{"./.env.svc"}) {
		t.Errorf("expected ./.env.svc to be loaded, got %v", fs.loaded)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"DEBUG", []string{"debug"}},
		{"RETRY_JITTER", []string{"retry_jitter", "retry.jitter"}},
		{"RETRY_MAX_ATTEMPTS", []string{"retry_max_attempts", "retry.max.attempts", "retry.max_attempts", "retry_max.attempts"}},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := envKeyVariants(tc.key); !slices.Equal(got, tc.want) {
				t.Errorf("envKeyVariants(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithName("svc")(&lc)

	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.Name != "svc" {
		t.Errorf("unexpected loader config: %+v", lc)
	}
}
