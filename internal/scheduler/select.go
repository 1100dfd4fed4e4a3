package scheduler

// Strategy names one of the two mutually incompatible salloc invocation
// protocols.
type Strategy int

const (
	// IntegratedStep: salloc launches the interactive step itself; the
	// assembled command is salloc plus allocation options only.
	IntegratedStep Strategy = iota

	// LegacyShellWrap: salloc is handed an explicit srun --pty wrap of the
	// user's login shell.
	LegacyShellWrap
)

func (s Strategy) String() string {
	switch s {
	case IntegratedStep:
		return "integrated-step"
	case LegacyShellWrap:
		return "legacy-shell-wrap"
	default:
		return "unknown"
	}
}

// SelectProtocol maps a probed profile to the invocation strategy and
// reports whether to warn that srun commands inside the session may hang.
//
// Slurm 20.11 changed job steps to no longer share allocated resources, so
// on the legacy path an srun launched inside the wrapped shell blocks until
// the shell's own step exits. The integrated step does not have this
// problem. The warning covers 20.11, 20.12 and everything from 21 on;
// 20.13 never shipped, so the literal minor check matches all affected
// 20.x releases.
func SelectProtocol(p Profile) (Strategy, bool) {
	if p.InteractiveStep {
		return IntegratedStep, false
	}
	warn := p.Major >= 21 || (p.Major == 20 && (p.Minor == 11 || p.Minor == 12))
	return LegacyShellWrap, warn
}
