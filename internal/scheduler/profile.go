package scheduler

import (
	"strconv"
	"strings"
)

// Profile is the result of probing the live scheduler. It is constructed
// once per run and never mutated afterwards.
type Profile struct {
	// InteractiveStep is true when LaunchParameters advertises
	// use_interactive_step, i.e. salloc runs the interactive step itself.
	InteractiveStep bool

	// Major and Minor come from the scontrol version string. Unparseable
	// components are zero.
	Major int
	Minor int
}

// ParseVersion extracts the leading major.minor pair from output like
// "slurm 21.08.8" or "slurm-wlm 20.11.9". The first whitespace-separated
// token containing a dot is taken as the version; non-numeric components
// become zero.
func ParseVersion(raw string) (major, minor int) {
	for _, field := range strings.Fields(raw) {
		if !strings.Contains(field, ".") {
			continue
		}
		parts := strings.Split(field, ".")
		major, _ = strconv.Atoi(parts[0])
		if len(parts) > 1 {
			minor, _ = strconv.Atoi(parts[1])
		}
		return major, minor
	}
	return 0, 0
}
