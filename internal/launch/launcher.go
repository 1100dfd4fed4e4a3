package launch

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Launcher hands the process over to a built plan. The real implementation
// replaces the process image and never returns on success; tests inject a
// recorder instead.
type Launcher interface {
	Launch(plan Plan) error
}

// ExecLauncher replaces the current process image with the planned command
// via execve, keeping the current environment.
type ExecLauncher struct{}

func (ExecLauncher) Launch(plan Plan) error {
	path, err := exec.LookPath(plan.Path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrAllocCommandNotFound, plan.Path)
	}
	return syscall.Exec(path, plan.Argv, os.Environ())
}
