package launch

import (
	"fmt"
	"os"
	"strings"

	"github.com/lgorenstein/sinteractive/internal/config"
	"github.com/lgorenstein/sinteractive/internal/scheduler"
	"github.com/lgorenstein/sinteractive/internal/utils"
)

// Prober is the narrow probe adapter consumed by Dispatch, so tests can
// stub the scheduler entirely.
type Prober interface {
	ProbeScheduler() scheduler.Profile
}

// Dispatch runs the probe → selection → planning pipeline and hands the
// process over to salloc. On the success path it does not return; every
// error it does return was detected before any external command ran.
func Dispatch(req Request, probe Prober, launcher Launcher) error {
	prof := applyProtocolPin(probe.ProbeScheduler())
	strategy, warnHang := scheduler.SelectProtocol(prof)
	utils.PrintDebug("scheduler profile: interactive_step=%v version=%d.%d strategy=%s",
		prof.InteractiveStep, prof.Major, prof.Minor, strategy)

	opts := BuildOptions(req)

	var shellPath string
	if strategy == scheduler.LegacyShellWrap {
		shell, err := ResolveShell()
		if err != nil {
			return err
		}
		shellPath = shell
		utils.PrintDebug("login shell: %s", utils.StylePath(shellPath))
	}

	plan := BuildPlan(strategy, opts, shellPath)

	if warnHang {
		utils.PrintWarning("Slurm %d.%d runs job steps without --overlap: srun commands "+
			"inside this session may hang. Add --overlap to srun if it stalls.",
			prof.Major, prof.Minor)
	}
	if req.Verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", utils.StyleHint("exec:"),
			utils.StyleCommand(strings.Join(plan.Argv, " ")))
	}

	return launcher.Launch(plan)
}

// applyProtocolPin overrides the probed interactive-step support when
// force_protocol is set, for clusters whose scontrol misreports
// LaunchParameters. The version tuple is left alone so the hang advisory
// still reflects the real release.
func applyProtocolPin(prof scheduler.Profile) scheduler.Profile {
	switch config.Global.ForceProtocol {
	case config.ProtocolIntegrated:
		prof.InteractiveStep = true
	case config.ProtocolLegacy:
		prof.InteractiveStep = false
	}
	return prof
}
