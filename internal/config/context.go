package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrContextNotFound is returned when a named context is not configured.
var ErrContextNotFound = errors.New("context not found")

// Context is a named AWS profile/region pair.
type Context struct {
	Profile string `yaml:"profile,omitempty"`
	Region  string `yaml:"region,omitempty"`
}

// Defaults represents default settings
type Defaults struct {
	Output         string `yaml:"output,omitempty"`          // table, json, yaml, text
	PageSize       int32  `yaml:"page_size,omitempty"`       // Page size for list operations
	StrictRequired bool   `yaml:"strict_required,omitempty"` // Fail instead of warn on empty required parameters
	LogLevel       string `yaml:"log_level,omitempty"`       // debug, info, warn, error
}

// File represents the main configuration file (~/.crs.yaml)
type File struct {
	CurrentContext string              `yaml:"current_context,omitempty"`
	Contexts       map[string]*Context `yaml:"contexts,omitempty"`
	Defaults       *Defaults           `yaml:"defaults,omitempty"`
}

// Path returns the config file path: $CRS_CONFIG, else ~/.crs.yaml.
func Path() string {
	if p := os.Getenv("CRS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crs.yaml"
	}
	return filepath.Join(home, ".crs.yaml")
}

func newFile() *File {
	return &File{
		Contexts: make(map[string]*Context),
		Defaults: &Defaults{Output: "table"},
	}
}

// Load reads the configuration file. A missing file yields the defaults.
func Load() (*File, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return newFile(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Initialize maps if nil
	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}
	// A context key with no body ("prod:") is not a configured context.
	for name, c := range cfg.Contexts {
		if c == nil {
			delete(cfg.Contexts, name)
		}
	}
	if cfg.Defaults == nil {
		cfg.Defaults = &Defaults{}
	}
	if cfg.Defaults.Output == "" {
		cfg.Defaults.Output = "table"
	}

	return &cfg, nil
}

// Save writes the configuration file.
func Save(cfg *File) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetCurrentContext returns the current active context
func GetCurrentContext() (*Context, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	if cfg.CurrentContext == "" {
		return nil, "", nil
	}

	ctx, ok := cfg.Contexts[cfg.CurrentContext]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrContextNotFound, cfg.CurrentContext)
	}

	return ctx, cfg.CurrentContext, nil
}

// GetContext returns a context by name.
func GetContext(name string) (*Context, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	ctx, ok := cfg.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}
	return ctx, nil
}

// SetCurrentContext sets the current active context
func SetCurrentContext(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	// Validate context exists
	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}

	cfg.CurrentContext = name
	return Save(cfg)
}

// AddContext adds or updates a context
func AddContext(name string, ctx *Context) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.Contexts[name] = ctx
	return Save(cfg)
}

// DeleteContext removes a context
func DeleteContext(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}
	delete(cfg.Contexts, name)

	// Clear current context if it was the deleted one
	if cfg.CurrentContext == name {
		cfg.CurrentContext = ""
	}

	return Save(cfg)
}

// ListContexts returns all configured contexts
func ListContexts() (map[string]*Context, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	return cfg.Contexts, cfg.CurrentContext, nil
}
