package config

const VERSION = "2.1.0"

// Protocol pin values accepted by the force_protocol config key.
const (
	ProtocolAuto       = ""
	ProtocolIntegrated = "integrated"
	ProtocolLegacy     = "legacy"
)

// Config holds global application settings
type Config struct {
	Debug   bool
	Version string

	SallocBin   string
	SrunBin     string
	ScontrolBin string

	JobName      string
	Bell         bool
	DefaultShell string

	// ForceProtocol pins the probe result for clusters whose scontrol
	// misreports LaunchParameters. Empty means the live probe decides.
	ForceProtocol string

	AuditLog string
}

// Global holds the singleton configuration instance
var Global Config

// LoadDefaults resets Global to the built-in defaults. Viper values and
// command-line flags are layered on top afterwards.
func LoadDefaults() {
	Global = Config{
		Debug:   false,
		Version: VERSION,

		SallocBin:   "salloc",
		SrunBin:     "srun",
		ScontrolBin: "scontrol",

		JobName:      "interactive",
		Bell:         true,
		DefaultShell: "/bin/bash",

		ForceProtocol: ProtocolAuto,
		AuditLog:      "",
	}
}
