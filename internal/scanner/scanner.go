package scanner

import (
	"context"
	"os"

	"github.com/cyk-dot/rtigen/internal/ctxlog"
)

// Scanner extracts registration occurrences from every source file under a
// scan root.
type Scanner struct {
	matcher *Matcher
}

// New creates a Scanner using the given matcher.
func New(matcher *Matcher) *Scanner {
	return &Scanner{matcher: matcher}
}

// ScanRoot walks root and returns the per-module symbol set. Unreadable
// files are logged and skipped; only a root that cannot be walked at all is
// an error. File contents are matched as raw bytes, so text that is not
// valid UTF-8 is tolerated rather than rejected.
func (s *Scanner) ScanRoot(ctx context.Context, root string) (*SymbolSet, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := FindSourceFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	set := NewSymbolSet()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("Failed to read file, skipping.", "file", file, "error", err)
			continue
		}
		for _, name := range s.matcher.Extract(string(data)) {
			logger.Debug("Found registration call.", "symbol", name, "file", file)
			set.Add(name, file)
		}
	}

	return set, nil
}
