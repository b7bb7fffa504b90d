package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/fnkit/logger"
)

// EnvPrefix marks environment variables that override configuration keys.
const EnvPrefix = "FNKIT"

// FileSystem abstracts the file operations of the loader (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// OSFileSystem implements FileSystem on the local disk.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OSFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver finds config and env files in the standard locations.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths. Empty means
// nothing was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns the explicit paths from opts when given and searches
// for the missing ones otherwise.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(configCandidates(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first(envCandidates(name))
	}
	return resolved
}

func (r *Resolver) first(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func configCandidates(name string) []string {
	var paths []string
	for _, dir := range []string{".", "./config", ".."} {
		paths = append(paths,
			fmt.Sprintf("%s/%s.yml", dir, name),
			fmt.Sprintf("%s/%s.yaml", dir, name),
		)
	}
	return append(paths, "./config/config.yml", "./config.yml")
}

func envCandidates(name string) []string {
	var paths []string
	for _, file := range []string{".env." + name, ".env"} {
		for _, dir := range []string{".", "./config", ".."} {
			paths = append(paths, dir+"/"+file)
		}
	}
	return paths
}

// LoaderConfig holds the loader dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	// Name is used to search for <name>.yml and .env.<name>. Defaults to
	// "fnkit".
	Name string
}

// LoaderOption is a functional option for Load and LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithName sets the base name used when searching for files.
func WithName(name string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Name = name }
}

// Load reads Settings, applies defaults and validates the result.
func Load(opts ...LoaderOption) (*Settings, error) {
	s := &Settings{}
	if err := LoadConfig(s, opts...); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadConfig decodes configuration into cfg without applying defaults. A
// missing config file is not an error.
func LoadConfig(cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{Name: "fnkit"}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = OSFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(lc.Name, lc)
	return loadFromResolvedFiles(cfg, files, lc.FileSystem)
}

func loadFromResolvedFiles(cfg any, files ResolvedFiles, fs FileSystem) error {
	log := logger.Get("config")
	v := viper.New()

	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			log.Warn("failed to load config file", logger.Fields("path", files.ConfigFile, logger.FieldError, err.Error()))
		}
	}

	// .env values land in the process environment and are bound below with
	// everything else.
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			log.Warn("failed to load .env file", logger.Fields("path", files.EnvFile, logger.FieldError, err.Error()))
		}
	}
	bindEnv(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// bindEnv sets every FNKIT_ prefixed variable under each nested key it may
// address.
func bindEnv(v *viper.Viper, environ []string) {
	prefix := EnvPrefix + "_"
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(key, prefix)) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants lists the keys an environment variable may address.
// Examples:
//
//	RETRY_MAX_ATTEMPTS -> [retry_max_attempts, retry.max.attempts, retry.max_attempts, retry_max.attempts]
//	RATE_LIMIT_BURST   -> [rate_limit_burst, rate.limit.burst, rate.limit_burst, rate_limit.burst]
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) == 1 {
		return []string{lower}
	}

	variants := []string{lower, strings.Join(parts, ".")}
	// One dot at every position covers a section name and a field name that
	// may each contain underscores.
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "_"))
	}
	return dedupe(variants)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
