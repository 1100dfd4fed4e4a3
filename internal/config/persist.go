package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lgorenstein/sinteractive/internal/utils"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled in cmd)
// 2. Environment variables (SINTERACTIVE_*)
// 3. User config file (~/.config/sinteractive/config.yaml)
// 4. System config file (/etc/sinteractive/config.yaml)
// 5. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	// User config (highest priority)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, "sinteractive"))
	}

	// Home directory fallback
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".sinteractive"))
	}

	// System-wide config (lower priority)
	viper.AddConfigPath("/etc/sinteractive")

	// Environment variables
	viper.SetEnvPrefix("SINTERACTIVE")
	viper.AutomaticEnv()

	// Set defaults (lowest priority)
	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; built-in defaults apply
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("salloc_bin", "salloc")
	viper.SetDefault("srun_bin", "srun")
	viper.SetDefault("scontrol_bin", "scontrol")
	viper.SetDefault("job_name", "interactive")
	viper.SetDefault("bell", true)
	viper.SetDefault("default_shell", "/bin/bash")
	viper.SetDefault("force_protocol", ProtocolAuto)
	viper.SetDefault("audit_log", "")
}

// ValidateBinary checks if a binary exists and is executable
func ValidateBinary(binPath string) bool {
	if binPath == "" {
		return false
	}

	// If it's a full path, check directly
	if filepath.IsAbs(binPath) {
		return utils.IsExecutable(binPath)
	}

	// Otherwise, try to find it in PATH
	_, err := exec.LookPath(binPath)
	return err == nil
}

// LoadFromViper loads config from Viper into the Global struct. Binary
// settings that fail validation are kept as-is; the launcher reports the
// failure when it actually needs the binary.
func LoadFromViper() {
	for _, bin := range []struct {
		key    string
		target *string
	}{
		{"salloc_bin", &Global.SallocBin},
		{"srun_bin", &Global.SrunBin},
		{"scontrol_bin", &Global.ScontrolBin},
	} {
		value := viper.GetString(bin.key)
		if value == "" {
			continue
		}
		*bin.target = value
		if !ValidateBinary(value) {
			utils.PrintDebug("%s %s not found on this host", bin.key, utils.StylePath(value))
		}
	}

	if name := viper.GetString("job_name"); name != "" {
		Global.JobName = name
	}
	Global.Bell = viper.GetBool("bell")

	if shell := viper.GetString("default_shell"); shell != "" {
		Global.DefaultShell = shell
	}

	switch mode := viper.GetString("force_protocol"); mode {
	case ProtocolAuto, ProtocolIntegrated, ProtocolLegacy:
		Global.ForceProtocol = mode
	default:
		utils.PrintWarning("ignoring unknown force_protocol value %s (want %q or %q)",
			utils.StyleName(mode), ProtocolIntegrated, ProtocolLegacy)
	}

	Global.AuditLog = viper.GetString("audit_log")
}
