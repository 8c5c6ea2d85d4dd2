package paths

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestHome points HOME at a temp directory, clears XDG vars and resets the cached layout.
func setupTestHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	Reset()
	t.Cleanup(Reset)
	return tmpDir
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetect_FreshInstallNoXDG(t *testing.T) {
	home := t.TempDir()
	flat := filepath.Join(home, ".cs")

	l := Detect(home, env(nil))
	if !l.Legacy {
		t.Error("fresh install without XDG should use the flat layout")
	}
	if l.ConfigDir != flat || l.DataDir != flat || l.StateDir != flat {
		t.Errorf("layout = %+v, want everything under %s", l, flat)
	}
	if want := filepath.Join(flat, "sessions"); l.RegistryFile() != want {
		t.Errorf("RegistryFile = %q, want %q", l.RegistryFile(), want)
	}
}

func TestDetect_FlatDirTakesPrecedenceOverXDG(t *testing.T) {
	home := t.TempDir()
	flat := filepath.Join(home, ".cs")
	if err := os.MkdirAll(flat, 0755); err != nil {
		t.Fatal(err)
	}

	l := Detect(home, env(map[string]string{
		"XDG_CONFIG_HOME": filepath.Join(home, ".config"),
		"XDG_DATA_HOME":   filepath.Join(home, ".local", "share"),
	}))
	if !l.Legacy || l.DataDir != flat {
		t.Errorf("layout = %+v, want flat layout in %s", l, flat)
	}
}

func TestDetect_XDGPartialVars(t *testing.T) {
	home := t.TempDir()
	xdgData := filepath.Join(home, "my-data")

	l := Detect(home, env(map[string]string{"XDG_DATA_HOME": xdgData}))

	if l.Legacy {
		t.Error("XDG layout should not be legacy")
	}
	if want := filepath.Join(xdgData, "cs", "sessions"); l.RegistryFile() != want {
		t.Errorf("RegistryFile = %q, want %q", l.RegistryFile(), want)
	}
	if want := filepath.Join(home, ".config", "cs", "config.yaml"); l.ConfigFile() != want {
		t.Errorf("ConfigFile = %q, want %q", l.ConfigFile(), want)
	}
	if want := filepath.Join(home, ".local", "state", "cs", "logs"); l.LogsDir() != want {
		t.Errorf("LogsDir = %q, want %q", l.LogsDir(), want)
	}
}

func TestDetect_FileNamedLikeFlatDir(t *testing.T) {
	home := t.TempDir()
	// A regular file named .cs must not select the flat layout.
	if err := os.WriteFile(filepath.Join(home, ".cs"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}
	xdgConfig := filepath.Join(home, ".config")

	l := Detect(home, env(map[string]string{"XDG_CONFIG_HOME": xdgConfig}))
	if want := filepath.Join(xdgConfig, "cs"); l.ConfigDir != want {
		t.Errorf("ConfigDir = %q, want %q", l.ConfigDir, want)
	}
}

func TestPackageFunctions(t *testing.T) {
	home := setupTestHome(t)

	reg, err := RegistryPath()
	if err != nil {
		t.Fatalf("RegistryPath: %v", err)
	}
	if want := filepath.Join(home, ".cs", "sessions"); reg != want {
		t.Errorf("RegistryPath = %q, want %q", reg, want)
	}

	cfg, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath: %v", err)
	}
	if want := filepath.Join(home, ".cs", "config.yaml"); cfg != want {
		t.Errorf("ConfigFilePath = %q, want %q", cfg, want)
	}

	logs, err := LogsDir()
	if err != nil {
		t.Fatalf("LogsDir: %v", err)
	}
	if want := filepath.Join(home, ".cs", "logs"); logs != want {
		t.Errorf("LogsDir = %q, want %q", logs, want)
	}

	if !IsLegacyLayout() {
		t.Error("IsLegacyLayout should be true without XDG variables")
	}
}

func TestResetClearsCache(t *testing.T) {
	home := setupTestHome(t)

	if !IsLegacyLayout() {
		t.Fatal("expected flat layout before XDG is set")
	}

	xdgState := filepath.Join(home, "state")
	t.Setenv("XDG_STATE_HOME", xdgState)
	if !IsLegacyLayout() {
		t.Error("layout should stay cached until Reset")
	}

	Reset()
	if IsLegacyLayout() {
		t.Error("IsLegacyLayout should be false after Reset with XDG set")
	}
	logs, err := LogsDir()
	if err != nil {
		t.Fatalf("LogsDir: %v", err)
	}
	if want := filepath.Join(xdgState, "cs", "logs"); logs != want {
		t.Errorf("LogsDir = %q, want %q", logs, want)
	}
}

func TestHomeDirFallsBackToUserProfile(t *testing.T) {
	t.Setenv("HOME", "")
	profile := t.TempDir()
	t.Setenv("USERPROFILE", profile)

	got, err := HomeDir()
	if err != nil {
		t.Fatalf("HomeDir: %v", err)
	}
	// os.UserHomeDir reads USERPROFILE on Windows and HOME elsewhere; either
	// way the profile directory is the answer once HOME is empty.
	if got != profile {
		t.Errorf("HomeDir = %q, want %q", got, profile)
	}
}
