package paths

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the data directory.
const HomeEnv = "CHARDETECT_HOME"

// Home returns the data directory: $CHARDETECT_HOME if set, otherwise
// ~/.chardetect.
func Home() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".chardetect")
}

// Resolve returns override when it is non-empty, otherwise Home().
func Resolve(override string) string {
	if override != "" {
		return override
	}
	return Home()
}

// SocketPath returns the daemon's UDS socket path.
func SocketPath(home string) string {
	return filepath.Join(home, "daemon.sock")
}

// LockPath returns the instance lock file path.
func LockPath(home string) string {
	return filepath.Join(home, "LOCK")
}

// DBPath returns the sample history database path.
func DBPath(home string) string {
	return filepath.Join(home, "history.db")
}

// LogDir returns the log directory.
func LogDir(home string) string {
	return filepath.Join(home, "logs")
}

// LogPath returns the daemon log file path.
func LogPath(home string) string {
	return filepath.Join(LogDir(home), "chardetd.log")
}

// ConfigPath returns the config file path.
func ConfigPath(home string) string {
	return filepath.Join(home, "config.toml")
}

// EnsureDir creates the data directory tree with proper permissions.
func EnsureDir(home string) error {
	for _, d := range []string{home, LogDir(home)} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
