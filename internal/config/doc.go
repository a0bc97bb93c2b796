// Package config handles configuration loading and merging for rig.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--no-color, --no-spinner, --shell, --spinner, etc.)
//  2. Environment variables (RIG_NO_COLOR, RIG_CI, NO_COLOR, CI, RIG_DEBUG)
//  3. YAML config file (.rig.yaml in the working directory or ~/.config/rig/.rig.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # CI Mode Behavior
//
// When CI mode is enabled (via --ci flag or CI=true env var):
//   - Colors are disabled
//   - The busy indicator is disabled, so captured logs stay free of redraw bytes
//
// # Environment Variables
//
//   - RIG_NO_COLOR or NO_COLOR: disable colors
//   - RIG_CI or CI: set to "true" or "1" to enable CI mode
//   - RIG_DEBUG: set to any non-empty value to enable debug output
package config
