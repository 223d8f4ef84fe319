package store

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseName is used when the executable path cannot be determined.
const DefaultBaseName = "notebox"

// AutoSavePath returns "<executable base name>.json", relative to the
// working directory.
func AutoSavePath() string {
	exe, err := os.Executable()
	if err != nil {
		return AutoSavePathFor("")
	}
	return AutoSavePathFor(exe)
}

// AutoSavePathFor derives the auto-save file name from an executable path.
// The extension (".exe", ".test") is dropped.
func AutoSavePathFor(executable string) string {
	return BaseName(executable) + ".json"
}

// BaseName returns the executable name without directory and extension.
func BaseName(executable string) string {
	base := filepath.Base(executable)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(os.PathSeparator) {
		return DefaultBaseName
	}
	return base
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
// Both build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}
