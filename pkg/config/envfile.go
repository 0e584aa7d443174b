package config

import (
	"os"
	"path/filepath"
)

// DefaultEnvFile is looked up when Load is given no env file.
const DefaultEnvFile = ".env"

// FindEnvFile returns the first existing file among candidates, falling back
// to DefaultEnvFile when none is given. Absolute candidates are checked as
// is; relative ones are searched from the working directory up to the root.
func FindEnvFile(candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = []string{DefaultEnvFile}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if filepath.IsAbs(name) {
			if fileExists(name) {
				return name, nil
			}
			continue
		}
		for dir := wd; ; dir = filepath.Dir(dir) {
			if path := filepath.Join(dir, name); fileExists(path) {
				return path, nil
			}
			if filepath.Dir(dir) == dir {
				break
			}
		}
	}
	return "", os.ErrNotExist
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
