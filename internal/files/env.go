package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnv overrides where pulse keeps its local state.
	HomeEnv = "PULSE_HOME"
	// DefaultDirName is the state folder under the user's home directory.
	DefaultDirName = ".pulse"

	xdgDirName = "pulse"
)

// ResolveBasePath picks the state directory: PULSE_HOME first, then
// $XDG_CONFIG_HOME/pulse, then ~/.pulse.
func ResolveBasePath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(HomeEnv)); override != "" {
		return expandPath(override)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, xdgDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// expandPath resolves environment references and a leading "~".
func expandPath(input string) (string, error) {
	input = os.ExpandEnv(input)
	if input != "~" && !strings.HasPrefix(input, "~/") {
		return filepath.Clean(input), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(input, "~")), nil
}
