// Package docfile persists the rendered document, skipping writes when
// nothing but ignored lines changed.
package docfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the document lock.
var ErrLocked = errors.New("document is locked by another process")

// WriteIfChanged writes content to path unless the previous contents differ
// only on lines starting with ignorePrefix. It reports whether the file was
// written. A sidecar lock file guards against overlapping runs.
func WriteIfChanged(path, content, ignorePrefix string) (bool, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return false, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer lock.Unlock()

	previous, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err == nil && stripLines(string(previous), ignorePrefix) == stripLines(content, ignorePrefix) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// stripLines drops every line starting with prefix. An empty prefix keeps the
// text as is.
func stripLines(text, prefix string) string {
	if prefix == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
