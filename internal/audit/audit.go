// Package audit appends a one-line record of every invocation (login name
// plus the raw argument line) to a log file. It is best-effort: failures
// never interfere with the launch.
package audit

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lgorenstein/sinteractive/internal/config"
	"github.com/lgorenstein/sinteractive/internal/utils"
)

// Records older than this are discarded wholesale: the first line of the
// file is its creation timestamp, and a stale file is simply removed.
const maxAge = 7 * 24 * time.Hour

// LogPath returns the configured audit log location, defaulting to the
// system temp directory.
func LogPath() string {
	if path := config.Global.AuditLog; path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "sinteractive.log")
}

// Record appends the invocation line. Independent of verbosity.
func Record(args []string) {
	path := LogPath()
	pruneStale(path)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		utils.PrintDebug("audit log unavailable: %v", err)
		return
	}
	defer f.Close()

	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		fmt.Fprintln(f, time.Now().Format(time.RFC3339))
	}

	log.New(f, "", log.LstdFlags).Printf("%s %s", utils.CurrentLogin(), strings.Join(args, " "))
}

// pruneStale removes the log when its creation tag is past maxAge or
// unreadable.
func pruneStale(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	scanner := bufio.NewScanner(f)
	scanner.Scan()
	f.Close()

	tag, err := time.Parse(time.RFC3339, scanner.Text())
	if err != nil || time.Since(tag) > maxAge {
		os.Remove(path)
	}
}
