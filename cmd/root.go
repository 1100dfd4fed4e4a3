package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lgorenstein/sinteractive/internal/audit"
	"github.com/lgorenstein/sinteractive/internal/config"
	"github.com/lgorenstein/sinteractive/internal/launch"
	"github.com/lgorenstein/sinteractive/internal/scheduler"
	"github.com/lgorenstein/sinteractive/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "sinteractive [flags] [salloc options...]",
	Short: "Launch an interactive Slurm session, whichever way this cluster wants it",
	Long: `sinteractive starts an interactive shell on allocated compute resources.

It probes the cluster's Slurm configuration and version, picks the matching
invocation protocol, and replaces itself with the resulting command:

  - integrated step:  salloc runs the interactive step itself
                      (LaunchParameters=use_interactive_step)
  - legacy wrap:      salloc is handed "srun --pty --cpu-bind=none $SHELL -l"

Every token sinteractive does not recognize is passed to salloc verbatim and
in order, after the built-in defaults, so your options always win. X11
forwarding (--x11) is requested automatically when DISPLAY is set.`,
	Example: `  sinteractive                          # one core, default partition
  sinteractive -n 4 -t 2:00:00          # 4 tasks for two hours
  sinteractive -p gpu --gres=gpu:1      # any salloc option passes through
  sinteractive --no-x11 -N 2            # suppress automatic X11 forwarding
  sinteractive --wrapper-verbose        # show the command before exec`,
	Version: config.VERSION,

	// Flag parsing is done by hand in scanArgs: every unrecognized token
	// must reach salloc verbatim and in its original position, which the
	// flag machinery would reorder or reject.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// Execute runs the launcher. It returns to main only on the help path or
// after a pre-dispatch failure; success replaces the process image.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Declared for the help text; values are picked up in scanArgs.
	rootCmd.Flags().Bool("wrapper-verbose", false, "Print the assembled command line before replacing the process")
	rootCmd.Flags().Bool("wrapper-debug", false, "Enable wrapper debug output")
	rootCmd.Flags().Bool("no-x11", false, "Never inject --x11, even when DISPLAY is set")
}

func runRoot(cmd *cobra.Command, args []string) error {
	req, showHelp := scanArgs(args)
	if showHelp {
		return cmd.Help()
	}

	config.LoadDefaults()
	if err := config.InitViper(); err != nil {
		utils.PrintDebug("config file error: %v", err)
	}
	config.LoadFromViper()
	config.Global.Debug = utils.DebugMode
	if utils.DebugMode {
		utils.PrintDebug("sinteractive version %s", utils.StyleInfo(config.VERSION))
		utils.PrintDebug("salloc=%s srun=%s scontrol=%s",
			config.Global.SallocBin, config.Global.SrunBin, config.Global.ScontrolBin)
	}

	audit.Record(os.Args[1:])

	if jobID, inJob := os.LookupEnv("SLURM_JOB_ID"); inJob {
		utils.PrintWarning("already inside Slurm job %s; the new allocation will queue separately",
			utils.StyleName(jobID))
	}

	probe := scheduler.NewProbe(config.Global.ScontrolBin)
	return launch.Dispatch(req, probe, launch.ExecLauncher{})
}

// scanArgs splits the raw argument list into the wrapper's own flags and
// the salloc passthrough tokens, preserving passthrough order.
func scanArgs(args []string) (launch.Request, bool) {
	var req launch.Request
	var noX11, showHelp bool

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			showHelp = true
		case "--wrapper-verbose":
			req.Verbose = true
		case "--wrapper-debug":
			utils.DebugMode = true
		case "--no-x11":
			noX11 = true
		default:
			req.UserTokens = append(req.UserTokens, arg)
		}
	}

	req.X11 = os.Getenv("DISPLAY") != "" && !noX11
	return req, showHelp
}
