package launch

import (
	"github.com/lgorenstein/sinteractive/internal/config"
	"github.com/lgorenstein/sinteractive/internal/scheduler"
)

// Plan is the fully assembled argument vector handed to the allocation
// command. Built once, consumed once by process replacement.
type Plan struct {
	// Path is the binary to exec (resolved against PATH at launch time).
	Path string

	// Argv is the complete argument vector, argv[0] included.
	Argv []string
}

// BuildPlan assembles the command line for the chosen strategy. Under
// IntegratedStep the plan is salloc plus its options; under LegacyShellWrap
// the srun wrap, the resolved shell and its login flag are appended so that
// salloc runs the whole chain once resources are granted.
func BuildPlan(strategy scheduler.Strategy, opts Options, shellPath string) Plan {
	argv := make([]string, 0, 1+len(opts.Alloc)+len(opts.Exec)+3)
	argv = append(argv, config.Global.SallocBin)
	argv = append(argv, opts.Alloc...)

	if strategy == scheduler.LegacyShellWrap {
		argv = append(argv, config.Global.SrunBin)
		argv = append(argv, opts.Exec...)
		argv = append(argv, shellPath, "-l")
	}

	return Plan{Path: config.Global.SallocBin, Argv: argv}
}
