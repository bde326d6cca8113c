// Package config loads the optional .xtar configuration file.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

// FileName is the name of the configuration file.
const FileName = ".xtar"

// Loader can be used for loading .xtar configuration.
//
// The zero value is ready for use and behaves as if no configuration file exists.
type Loader struct {
	// Dir is the directory to start searching from.
	//
	// Defaults to the current working directory.
	Dir string

	cfg *ini.File
}

// Load will traverse the directory hierarchy upwards to find the first ".xtar" file available and load its contents
// into the Loader.
//
// The name of the .xtar file is returned, or an empty string if none is found.
func (l *Loader) Load(ctx context.Context) (string, error) {
	l.cfg = ini.Empty()

	cur := l.Dir
	if cur == "" {
		var err error
		if cur, err = os.Getwd(); err != nil {
			return "", err
		}
	}

	cur, err := filepath.Abs(cur)
	if err != nil {
		return "", err
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		path := filepath.Join(cur, FileName)

		fi, err := os.Stat(path)
		switch {
		case err == nil && !fi.IsDir():
			if l.cfg, err = ini.Load(path); err != nil {
				l.cfg = ini.Empty()
				return path, fmt.Errorf(`load config "%s" error: %w`, path, err)
			}

			return path, nil
		case err != nil && !os.IsNotExist(err):
			return "", fmt.Errorf(`stat config "%s" error: %w`, path, err)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", nil
		}

		cur = parent
	}
}

func (l *Loader) section(name string) *ini.Section {
	if l.cfg == nil {
		return nil
	}

	sec, err := l.cfg.GetSection(name)
	if err != nil {
		return nil
	}

	return sec
}

// DefaultLoader is the default Loader instance for package-level methods.
var DefaultLoader = &Loader{}

// Load calls Loader.Load on the DefaultLoader instance.
func Load(ctx context.Context) (string, error) {
	return DefaultLoader.Load(ctx)
}
