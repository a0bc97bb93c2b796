// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Shell        string
	Spinner      string
	NoColor      bool
	NoSpinner    bool
	EchoFailures bool
	UsePicker    bool
	Yes          bool
	CI           bool
	Debug        bool

	// Flags to track if they were explicitly set by the user
	NoColorSet      bool
	NoSpinnerSet    bool
	EchoFailuresSet bool
	UsePickerSet    bool
	CISet           bool
	DebugSet        bool
}

// AppConfig represents the application's configuration from .rig.yaml.
type AppConfig struct {
	Manifest     string `yaml:"manifest,omitempty"`
	Shell        string `yaml:"shell,omitempty"`
	Spinner      string `yaml:"spinner,omitempty"`
	NoColor      bool   `yaml:"no_color"`
	NoSpinner    bool   `yaml:"no_spinner"`
	EchoFailures bool   `yaml:"echo_failures"`
	UsePicker    bool   `yaml:"use_picker"`
	Debug        bool   `yaml:"debug"`
}

// Settings is the effective configuration after the YAML file, environment,
// and command-line flags are folded together, in that precedence order.
type Settings struct {
	Manifest     string
	Shell        string
	Spinner      string
	NoColor      bool
	NoSpinner    bool
	EchoFailures bool
	UsePicker    bool
	AssumeYes    bool
	Debug        bool
}

// LoadConfig loads the .rig.yaml configuration. A missing or broken file is
// never fatal: the defaults win and a broken file earns a stderr warning.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{}

	initialDebug := os.Getenv("RIG_DEBUG") != ""

	configPath := getConfigPath()
	if configPath == "" {
		if initialDebug {
			fmt.Fprintln(os.Stderr, "[DEBUG LoadConfig] No .rig.yaml found, using defaults only.")
		}
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file %s: %v. Using defaults.\n", configPath, err)
		} else if initialDebug {
			fmt.Fprintf(os.Stderr, "[DEBUG LoadConfig] Config file %s not found. Using defaults.\n", configPath)
		}
		return appCfg
	}

	var yamlAppCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &yamlAppCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	*appCfg = yamlAppCfg

	if appCfg.Debug || initialDebug {
		fmt.Fprintf(os.Stderr, "[DEBUG LoadConfig] Loaded config from %s.\n", configPath)
	}
	return appCfg
}

// getConfigPath tries to find the .rig.yaml configuration file.
// It checks the working directory first, then the user config dir.
func getConfigPath() string {
	localPath := ".rig.yaml"
	if _, err := os.Stat(localPath); err == nil {
		if os.Getenv("RIG_DEBUG") != "" {
			absLocalPath, _ := filepath.Abs(localPath)
			fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] Using local config file: %s\n", absLocalPath)
		}
		return localPath
	}

	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		xdgPath := filepath.Join(configHome, "rig", ".rig.yaml")
		if _, errStat := os.Stat(xdgPath); errStat == nil {
			if os.Getenv("RIG_DEBUG") != "" {
				fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] Using XDG config file: %s\n", xdgPath)
			}
			return xdgPath
		}
	} else if os.Getenv("RIG_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] UserConfigDir error or unsuitable path. Error: %v, Path: '%s'\n", err, configHome)
	}

	return ""
}

// MergeWithFlags folds environment variables and explicitly set CLI flags
// onto the file config and returns the effective settings. CI runs force
// the quiet surfaces: no spinner redraws, no color.
func MergeWithFlags(appCfg *AppConfig, cliFlags CliFlags) Settings {
	s := Settings{
		Manifest:     appCfg.Manifest,
		Shell:        appCfg.Shell,
		Spinner:      appCfg.Spinner,
		NoColor:      appCfg.NoColor,
		NoSpinner:    appCfg.NoSpinner,
		EchoFailures: appCfg.EchoFailures,
		UsePicker:    appCfg.UsePicker,
		Debug:        appCfg.Debug,
	}

	effectiveCI := false

	envNoColorStr := os.Getenv("RIG_NO_COLOR")
	if envNoColorStr == "" {
		envNoColorStr = os.Getenv("NO_COLOR")
	}
	if envNoColorStr != "" {
		if bVal, err := strconv.ParseBool(envNoColorStr); err == nil {
			s.NoColor = bVal
		} else {
			// The NO_COLOR convention treats any non-empty value as set.
			s.NoColor = true
		}
	}

	envCIStr := os.Getenv("RIG_CI")
	if envCIStr == "" {
		envCIStr = os.Getenv("CI")
	}
	if envCIStr != "" {
		if bVal, err := strconv.ParseBool(envCIStr); err == nil {
			effectiveCI = bVal
		}
	}

	if os.Getenv("RIG_DEBUG") != "" {
		s.Debug = true
	}

	if cliFlags.Shell != "" {
		s.Shell = cliFlags.Shell
	}
	if cliFlags.Spinner != "" {
		s.Spinner = cliFlags.Spinner
	}
	if cliFlags.NoColorSet {
		s.NoColor = cliFlags.NoColor
	}
	if cliFlags.NoSpinnerSet {
		s.NoSpinner = cliFlags.NoSpinner
	}
	if cliFlags.EchoFailuresSet {
		s.EchoFailures = cliFlags.EchoFailures
	}
	if cliFlags.UsePickerSet {
		s.UsePicker = cliFlags.UsePicker
	}
	if cliFlags.CISet {
		effectiveCI = cliFlags.CI
	}
	if cliFlags.DebugSet {
		s.Debug = cliFlags.Debug
	}
	s.AssumeYes = cliFlags.Yes

	if effectiveCI {
		s.NoSpinner = true
		s.NoColor = true
	}

	if s.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG MergeWithFlags] Effective settings: shell=%q spinner=%q no_color=%t no_spinner=%t\n",
			s.Shell, s.Spinner, s.NoColor, s.NoSpinner)
	}
	return s
}
