package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cyk-dot/rtigen/internal/ctxlog"
)

// sourceExtensions is the allow-list of file extensions considered source
// text. Lower-cased before lookup.
var sourceExtensions = map[string]struct{}{
	".c":   {},
	".cc":  {},
	".cpp": {},
	".cxx": {},
	".h":   {},
	".hpp": {},
	".hxx": {},
}

// excludedDirs are pruned before descent: version control, build output,
// generated code, and editor caches.
var excludedDirs = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	".vscode":      {},
	".idea":        {},
	"build":        {},
	"out":          {},
	"output":       {},
	"generated":    {},
	"__pycache__":  {},
	"node_modules": {},
}

// FindSourceFiles recursively collects every regular file under root whose
// extension is on the allow-list, pruning excluded directories. A root that
// is itself a file is returned as-is when its extension qualifies. Traversal
// errors below the root are logged and the affected subtree skipped; only a
// failure to read the root itself is returned as an error. The lexical walk
// order makes the result deterministic for a fixed tree.
func FindSourceFiles(ctx context.Context, root string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Error("Skipping unreadable path during scan.", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, excluded := excludedDirs[d.Name()]; excluded && path != root {
				logger.Debug("Pruning excluded directory.", "path", path)
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := sourceExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
