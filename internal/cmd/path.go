package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
)

// expandPath replaces a leading "~" with the user's home directory and makes the path absolute.
//
// Empty paths are returned as-is so that the core can reject them.
func expandPath(name flags.Filename) (string, error) {
	path := string(name)
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get user home dir error: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf(`resolve path "%s" error: %w`, path, err)
	}

	return abs, nil
}
