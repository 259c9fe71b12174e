package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sanitizeFilename strips directory components and separator characters from
// a name before it is joined onto a download directory. An empty result means
// the name is unusable.
func sanitizeFilename(name string) string {
	name = filepath.Clean(filepath.Base(name))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 0, '/', '\\':
			return -1
		}
		return r
	}, name)
}

// safePath joins an untrusted filename onto dir, refusing anything that
// would resolve outside it.
func safePath(dir, name string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}

	cleaned := sanitizeFilename(name)
	if cleaned == "" {
		return "", fmt.Errorf("invalid filename %q", name)
	}

	full := filepath.Join(absDir, cleaned)
	if full != absDir && !strings.HasPrefix(full, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("filename %q escapes %s", name, dir)
	}
	return full, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
