// Package config loads cs's settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bikramtuladhar/claude-code-resumer/identity"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
	"github.com/bikramtuladhar/claude-code-resumer/paths"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig    = "CS_CONFIG"
	EnvNamespace = "CS_NAMESPACE"
	EnvDBPath    = "CS_DB_PATH"
	EnvClaudeBin = "CS_CLAUDE_BIN"
	EnvDebug     = "CS_DEBUG"
)

// DefaultUpgradeCommand reinstalls cs from the latest tagged release.
const DefaultUpgradeCommand = "go install github.com/bikramtuladhar/claude-code-resumer/cmd/cs@latest"

// LaunchMode selects how claude is started.
type LaunchMode string

const (
	// LaunchAuto replaces the process where the platform supports it and
	// spawns a child otherwise.
	LaunchAuto  LaunchMode = "auto"
	LaunchExec  LaunchMode = "exec"
	LaunchSpawn LaunchMode = "spawn"
)

// Config holds cs's settings.
type Config struct {
	Namespace      string     `yaml:"namespace,omitempty"`       // 32 hex digits; malformed values fall back to the DNS namespace
	RegistryPath   string     `yaml:"registry_path,omitempty"`   // Session database location
	ClaudeBinary   string     `yaml:"claude_binary,omitempty"`   // Executable launched for sessions
	RequireBranch  bool       `yaml:"require_branch,omitempty"`  // Refuse to run outside a git branch
	LaunchMode     LaunchMode `yaml:"launch_mode,omitempty"`     // auto, exec or spawn
	UpgradeCommand string     `yaml:"upgrade_command,omitempty"` // Command run by --upgrade
	Debug          bool       `yaml:"debug,omitempty"`           // Debug level logging

	filePath string
}

// Load reads the config file named by CS_CONFIG, or the default config file,
// then applies environment overrides and defaults. A missing file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		p, err := paths.ConfigFilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile parses the YAML file at path without applying the environment.
// Returns an empty config if the file does not exist.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides file settings with the environment.
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvNamespace); v != "" {
		c.Namespace = v
	}
	if v := getenv(EnvDBPath); v != "" {
		c.RegistryPath = v
	}
	if v := getenv(EnvClaudeBin); v != "" {
		c.ClaudeBinary = v
	}
	if v := getenv(EnvDebug); v != "" && v != "0" && !strings.EqualFold(v, "false") {
		c.Debug = true
	}
}

func (c *Config) applyDefaults() error {
	if c.RegistryPath == "" {
		p, err := paths.RegistryPath()
		if err != nil {
			return err
		}
		c.RegistryPath = p
	}
	if c.ClaudeBinary == "" {
		c.ClaudeBinary = "claude"
	}
	if c.LaunchMode == "" {
		c.LaunchMode = LaunchAuto
	}
	if strings.TrimSpace(c.UpgradeCommand) == "" {
		c.UpgradeCommand = DefaultUpgradeCommand
	}
	return nil
}

// Validate checks the settings that cannot fall back to a default.
func (c *Config) Validate() error {
	switch c.LaunchMode {
	case "", LaunchAuto, LaunchExec, LaunchSpawn:
	default:
		return fmt.Errorf("config %s: launch_mode: unknown mode %q (want auto, exec or spawn)", c.filePath, c.LaunchMode)
	}
	return nil
}

// FilePath returns the file the config was read from, whether or not it exists.
func (c *Config) FilePath() string {
	return c.filePath
}

// SessionNamespace returns the namespace identifiers are derived under.
func (c *Config) SessionNamespace() identity.Namespace {
	ns, overridden := identity.ResolveNamespace(c.Namespace)
	if c.Namespace != "" && !overridden {
		logger.WithComponent("config").Debug("ignoring malformed namespace", "value", c.Namespace)
	}
	return ns
}

// UpgradeArgv splits UpgradeCommand into a program and its arguments.
func (c *Config) UpgradeArgv() []string {
	cmd := c.UpgradeCommand
	if strings.TrimSpace(cmd) == "" {
		cmd = DefaultUpgradeCommand
	}
	return strings.Fields(cmd)
}
