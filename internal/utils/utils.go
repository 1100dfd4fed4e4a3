package utils

import (
	"os"
	"os/user"
)

// IsExecutable reports whether path names a regular file with any execute
// bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}

// CurrentLogin returns the invoking user's login name, falling back to the
// USER and LOGNAME environment variables when the account lookup fails.
func CurrentLogin() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "LOGNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}
	return ""
}
