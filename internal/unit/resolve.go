package unit

import "path/filepath"

// ResolvePath resolves path to an absolute, symlink-free form. Resolution
// is best effort: on any failure (path does not exist, permission denied)
// the original path is returned unchanged, so generated units can reference
// paths that only exist on the target host.
func ResolvePath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return path
	}
	return abs
}
