package checkpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// RetentionPolicy keeps at most a fixed number of weight files on disk.
// Registrations are tracked in save order; once the bound is exceeded the
// oldest registered file is deleted. Single-owner, not goroutine-safe.
type RetentionPolicy struct {
	logger   *slog.Logger
	keep     int
	retained []string
}

// NewRetentionPolicy builds a policy that retains the keep most recent
// registrations. keep must be at least 1.
func NewRetentionPolicy(logger *slog.Logger, keep int) (*RetentionPolicy, error) {
	if keep < 1 {
		return nil, fmt.Errorf("retention limit must be at least 1, got %d", keep)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetentionPolicy{logger: logger, keep: keep}, nil
}

// Register records a freshly saved weights file. When the registry
// overflows, the oldest entry is dropped and its file deleted. A file
// already gone from disk is not an error; any other deletion failure is
// returned after the entry has been evicted from the registry.
func (p *RetentionPolicy) Register(path string) error {
	p.retained = append(p.retained, path)
	if len(p.retained) <= p.keep {
		return nil
	}

	oldest := p.retained[0]
	p.retained = p.retained[1:]

	if err := os.Remove(oldest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove old weights %s: %w", oldest, err)
	}
	p.logger.Info("weights removed", slog.String("path", oldest))
	return nil
}

// Retained returns the currently tracked paths, oldest first.
func (p *RetentionPolicy) Retained() []string {
	out := make([]string, len(p.retained))
	copy(out, p.retained)
	return out
}
