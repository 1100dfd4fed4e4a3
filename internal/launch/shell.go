package launch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgorenstein/sinteractive/internal/config"
	"github.com/lgorenstein/sinteractive/internal/utils"
)

// passwdPath is a variable so tests can point the lookup at a fixture.
var passwdPath = "/etc/passwd"

// ResolveShell picks the interactive login shell for the legacy srun wrap:
// the SHELL environment override when it names an executable, then the
// invoking user's passwd entry, then the configured fallback. A
// non-executable result is fatal for the caller; nothing may be dispatched
// with a shell that cannot run.
func ResolveShell() (string, error) {
	if env := os.Getenv("SHELL"); env != "" {
		if utils.IsExecutable(env) {
			return env, nil
		}
		utils.PrintDebug("SHELL override %s is not executable; falling back to account lookup", utils.StylePath(env))
	}

	shell := passwdShell(utils.CurrentLogin())
	if shell == "" {
		shell = config.Global.DefaultShell
	}
	if !utils.IsExecutable(shell) {
		return "", fmt.Errorf("%w: %s", ErrShellNotExecutable, shell)
	}
	return shell, nil
}

// passwdShell returns the registered login shell for name, or "" when the
// account database has no usable entry.
func passwdShell(name string) string {
	if name == "" {
		return ""
	}
	f, err := os.Open(passwdPath)
	if err != nil {
		return ""
	}
	defer f.Close()
	return scanPasswd(f, name)
}

// scanPasswd finds name's seventh passwd field (the login shell).
func scanPasswd(r io.Reader, name string) string {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 7 || fields[0] != name {
			continue
		}
		return strings.TrimSpace(fields[6])
	}
	return ""
}
