package document

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const scratchPrefix = "temp_aadhaar_"

// Scratch is an uploaded document written to disk so the rasterizer can
// open it by path. The owner must arrange Remove on every exit path.
type Scratch struct {
	path    string
	removed bool
}

// NewScratch writes content to a uniquely named file under dir. The name is
// derived from a nanosecond timestamp, which is enough to avoid collisions
// between concurrent requests.
func NewScratch(dir string, content []byte) (*Scratch, error) {
	if dir == "" {
		dir = "."
	}

	name := fmt.Sprintf("%s%d.pdf", scratchPrefix, time.Now().UnixNano())
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, fmt.Errorf("write scratch file: %w", err)
	}

	return &Scratch{path: path}, nil
}

func (s *Scratch) Path() string {
	return s.path
}

// Remove deletes the scratch file. Failures are logged, not returned: a
// leftover scratch file does not affect the response already computed.
// Safe to call more than once.
func (s *Scratch) Remove(logger *slog.Logger) {
	if s == nil || s.removed {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove scratch file", "path", s.path, "error", err)
		return
	}

	s.removed = true
}
