// Package paths decides where cs keeps its files.
//
// Two layouts are supported:
//
//   - Flat: config.yaml, sessions and logs/ all live in ~/.cs. Used whenever
//     ~/.cs already exists, and on fresh installs without XDG variables.
//   - XDG: config.yaml under $XDG_CONFIG_HOME/cs, sessions under
//     $XDG_DATA_HOME/cs and logs/ under $XDG_STATE_HOME/cs. Chosen when any
//     of the three variables is set and ~/.cs does not exist. Unset
//     variables take their usual defaults.
//
// The layout is detected once per process; Reset forgets it.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const appDir = "cs"

// Layout is a resolved set of directories.
type Layout struct {
	ConfigDir string
	DataDir   string
	StateDir  string
	// Legacy is set for the flat ~/.cs layout.
	Legacy bool
}

// ConfigFile is the optional YAML settings file.
func (l Layout) ConfigFile() string { return filepath.Join(l.ConfigDir, "config.yaml") }

// RegistryFile is the session registry.
func (l Layout) RegistryFile() string { return filepath.Join(l.DataDir, "sessions") }

// LogsDir holds cs.log.
func (l Layout) LogsDir() string { return filepath.Join(l.StateDir, "logs") }

// Detect picks the layout for home. getenv supplies the XDG variables.
func Detect(home string, getenv func(string) string) Layout {
	flatDir := filepath.Join(home, "."+appDir)
	flat := Layout{ConfigDir: flatDir, DataDir: flatDir, StateDir: flatDir, Legacy: true}

	if info, err := os.Stat(flatDir); err == nil && info.IsDir() {
		return flat
	}

	config, data, state := getenv("XDG_CONFIG_HOME"), getenv("XDG_DATA_HOME"), getenv("XDG_STATE_HOME")
	if config == "" && data == "" && state == "" {
		return flat
	}

	orDefault := func(dir string, elem ...string) string {
		if dir == "" {
			dir = filepath.Join(append([]string{home}, elem...)...)
		}
		return filepath.Join(dir, appDir)
	}
	return Layout{
		ConfigDir: orDefault(config, ".config"),
		DataDir:   orDefault(data, ".local", "share"),
		StateDir:  orDefault(state, ".local", "state"),
	}
}

var (
	mu      sync.Mutex
	current *Layout
)

// Current returns the layout for the running process.
func Current() (Layout, error) {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return *current, nil
	}
	home, err := HomeDir()
	if err != nil {
		return Layout{}, err
	}
	l := Detect(home, os.Getenv)
	current = &l
	return l, nil
}

// Reset forgets the detected layout. Tests call it after changing HOME or
// the XDG variables.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}

// HomeDir returns the user's home directory.
// Falls back to USERPROFILE, then to the current directory, so that a
// misconfigured environment degrades to a local registry instead of failing.
func HomeDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		return profile, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return cwd, nil
}

// ConfigFilePath returns the default config file location.
func ConfigFilePath() (string, error) {
	l, err := Current()
	if err != nil {
		return "", err
	}
	return l.ConfigFile(), nil
}

// RegistryPath returns the default session registry location.
func RegistryPath() (string, error) {
	l, err := Current()
	if err != nil {
		return "", err
	}
	return l.RegistryFile(), nil
}

// LogsDir returns the directory for log files.
func LogsDir() (string, error) {
	l, err := Current()
	if err != nil {
		return "", err
	}
	return l.LogsDir(), nil
}

// IsLegacyLayout reports whether the flat ~/.cs layout is in use. An
// undeterminable home counts as flat.
func IsLegacyLayout() bool {
	l, err := Current()
	return err != nil || l.Legacy
}
