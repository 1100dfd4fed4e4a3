package launch

import "errors"

// Common errors
var (
	// ErrShellNotExecutable indicates the resolved login shell cannot be run
	ErrShellNotExecutable = errors.New("login shell is not executable")

	// ErrAllocCommandNotFound indicates salloc was not found in PATH
	ErrAllocCommandNotFound = errors.New("allocation command not found in PATH")
)
