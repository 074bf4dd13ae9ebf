// Package config provides user configuration for the weft demo binary.
//
// This package manages a YAML configuration file holding display and
// per-demo preferences. The file follows OS-specific conventions for
// its location:
//   - Linux: $XDG_CONFIG_HOME/weft/config.yaml or $HOME/.config/weft/config.yaml
//   - macOS: $HOME/.config/weft/config.yaml
//   - Windows: %LOCALAPPDATA%\weft\config.yaml
//
// A missing file is not an error: Load returns the defaults. Command
// line flags override whatever was loaded.
package config
