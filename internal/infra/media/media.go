// Package media writes binary generator payloads (CSV exports, audio) to
// disk. Acquisition and release are scoped: a partially written file is
// removed on every failure path so repeated export/narrate cycles never leave
// debris behind.
package media

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveBlob writes data under dir with the given name and returns the full
// path. The destination directory is created if missing.
func SaveBlob(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}
