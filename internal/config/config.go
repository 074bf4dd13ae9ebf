package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "weft"
	configFile = "config.yaml"
)

// Config holds the demo binary's user preferences.
type Config struct {
	// AltScreen selects the alternate screen buffer for all demos.
	AltScreen bool `yaml:"alt_screen"`

	Stopwatch StopwatchConfig `yaml:"stopwatch"`
	Scan      ScanConfig      `yaml:"scan"`
	Tail      TailConfig      `yaml:"tail"`
}

// StopwatchConfig configures the stopwatch demo.
type StopwatchConfig struct {
	// TickMillis is the timer resolution in milliseconds.
	TickMillis int `yaml:"tick_millis"`
}

// ScanConfig configures the mDNS browser demo.
type ScanConfig struct {
	// Service is the DNS-SD service type to browse for.
	Service string `yaml:"service"`
	// Domain is the browse domain, normally "local.".
	Domain string `yaml:"domain"`
	// TimeoutSeconds bounds how long the browse runs.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// TailConfig configures the websocket tail demo.
type TailConfig struct {
	// URL is the default websocket endpoint when none is given on the
	// command line.
	URL string `yaml:"url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		AltScreen: false,
		Stopwatch: StopwatchConfig{
			TickMillis: 100,
		},
		Scan: ScanConfig{
			Service:        "_http._tcp",
			Domain:         "local.",
			TimeoutSeconds: 30,
		},
		Tail: TailConfig{},
	}
}

// GetConfigDir returns the OS-appropriate configuration directory.
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems.
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration file, falling back to defaults when the
// file does not exist. Fields absent from the file keep their default
// values.
func Load() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Default(), err
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
