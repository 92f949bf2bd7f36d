// Package envfile loads environment variables from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads each existing file in order and sets the variables that are not
// already in the environment, so the first file to define a key wins.
// Missing files are skipped. It returns the files that were loaded.
func Load(paths ...string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("opening env file %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("reading env file %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
