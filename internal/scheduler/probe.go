package scheduler

import (
	"bufio"
	"os/exec"
	"strings"

	"github.com/lgorenstein/sinteractive/internal/utils"
)

// interactiveStepMarker is the LaunchParameters value that signals salloc
// can run the interactive step without an explicit srun wrap.
const interactiveStepMarker = "use_interactive_step"

// runner abstracts external command execution so tests can stub scontrol.
type runner func(bin string, args ...string) ([]byte, error)

func execRunner(bin string, args ...string) ([]byte, error) {
	return exec.Command(bin, args...).Output()
}

// Probe queries scontrol for the active configuration and version.
type Probe struct {
	ScontrolBin string
	run         runner
}

// NewProbe creates a probe that shells out to the given scontrol binary.
func NewProbe(scontrolBin string) *Probe {
	return &Probe{ScontrolBin: scontrolBin, run: execRunner}
}

// ProbeScheduler issues the two scontrol queries and returns the resulting
// profile. Either query failing degrades the profile (no interactive step,
// version 0.0) instead of aborting; the launcher then takes the legacy
// path, which works on every release.
func (p *Probe) ProbeScheduler() Profile {
	var prof Profile

	out, err := p.run(p.ScontrolBin, "show", "config")
	if err != nil || len(out) == 0 {
		utils.PrintDebug("scontrol show config failed (%v); assuming no interactive step", err)
	} else {
		prof.InteractiveStep = hasInteractiveStep(string(out))
	}

	vout, err := p.run(p.ScontrolBin, "--version")
	if err != nil {
		utils.PrintDebug("scontrol --version failed (%v); version unknown", err)
		return prof
	}
	prof.Major, prof.Minor = ParseVersion(strings.TrimSpace(string(vout)))

	return prof
}

// hasInteractiveStep scans scontrol show config output for the
// use_interactive_step launch parameter. Lines look like
// "LaunchParameters        = enable_nss_slurm,use_interactive_step".
func hasInteractiveStep(config string) bool {
	scanner := bufio.NewScanner(strings.NewReader(config))
	// Some site configs carry long SlurmctldParameters lines
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) != "LaunchParameters" {
			continue
		}
		for _, param := range strings.Split(value, ",") {
			if strings.TrimSpace(param) == interactiveStepMarker {
				return true
			}
		}
	}
	return false
}
