package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveWithin resolves filePath against root and checks that the result
// stays inside root (root itself included). Relative paths are taken
// relative to root.
//
// Security: ".." traversal and absolute paths outside root are rejected.
func ResolveWithin(filePath, root string) (string, error) {
	targetPath := filePath
	if !filepath.IsAbs(targetPath) {
		targetPath = filepath.Join(root, targetPath)
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root directory: %w", err)
	}

	// Compare against root plus separator so /http-evil does not match /http
	prefix := absRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if absPath != absRoot && !strings.HasPrefix(absPath, prefix) {
		return "", fmt.Errorf("access denied: %s is outside %s", filePath, absRoot)
	}

	return absPath, nil
}
