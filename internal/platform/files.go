package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Data directory resolution
const (
	DefaultDataDirName = "sterilized data box"
	DataDirEnvVar      = "ARSENAL_DATA_DIR"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DataDir returns the unit data directory: the ARSENAL_DATA_DIR
// environment variable when set, otherwise the default directory next to
// the working directory.
func DataDir() string {
	if dir := os.Getenv(DataDirEnvVar); dir != "" {
		return dir
	}
	return DefaultDataDirName
}

// SettingsPath returns the location of the settings file: next to the
// data directory when that exists, otherwise in the user config
// directory.
func SettingsPath(fileName string) string {
	if DirExists(DataDir()) {
		return filepath.Join(filepath.Dir(DataDir()), fileName)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(configDir, "arsenal", fileName)
}

// OpenURL opens a web URL in the system browser. Used for the unit's
// source article link in the details view.
func OpenURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", rawURL)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, rawURL).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
