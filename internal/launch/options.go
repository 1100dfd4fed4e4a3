package launch

import "github.com/lgorenstein/sinteractive/internal/config"

// Request carries one parsed invocation: the user's raw passthrough tokens
// plus the flags the wrapper consumes itself. Immutable once parsed.
type Request struct {
	// UserTokens are the unrecognized command-line tokens, verbatim and in
	// original order. They are opaque here; salloc validates them.
	UserTokens []string

	// X11 is true when DISPLAY is set and --no-x11 was not given.
	X11 bool

	// Verbose echoes the assembled command line before dispatch.
	Verbose bool
}

// Options holds the ordered option lists for the allocation command and,
// on the legacy path, the execution command.
type Options struct {
	Alloc []string
	Exec  []string
}

// BuildOptions merges built-in defaults, the auto-detected X11 flag, and
// the user's passthrough tokens. User tokens always come last so a repeated
// flag resolves in the user's favor: salloc honors the last occurrence, so
// nothing here deduplicates.
func BuildOptions(req Request) Options {
	alloc := []string{"-J", config.Global.JobName}
	if config.Global.Bell {
		alloc = append(alloc, "--bell")
	}
	// X11 forwarding belongs to the allocation, never to the srun wrap
	if req.X11 {
		alloc = append(alloc, "--x11")
	}
	alloc = append(alloc, req.UserTokens...)

	// The srun wrap takes no user tokens; everything the user typed is an
	// allocation option.
	execOpts := []string{"--pty", "--cpu-bind=none"}

	return Options{Alloc: alloc, Exec: execOpts}
}
