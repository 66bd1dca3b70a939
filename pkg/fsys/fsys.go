// Package fsys is the filesystem adapter the request tree is built on.
//
// It exposes the small set of POSIX-like operations the tree manager needs
// (existence checks, text read/write, directory creation and listing, copy,
// rename, recursive remove) plus path helpers. The only implementation wraps
// a go-billy filesystem, so production code runs on the OS filesystem and
// tests run on an in-memory one with identical semantics.
package fsys

// DirEntry is one element of a directory listing.
type DirEntry struct {
	Name        string
	IsDirectory bool
}

// FileSystem is the adapter consumed by the request tree manager.
// Implementations are not required to be crash-safe; Rename and CopyFile are
// expected to be atomic enough for single-user tooling.
type FileSystem interface {
	// Exists reports whether anything (file or directory) lives at path.
	Exists(path string) (bool, error)
	// ReadTextFile returns the full content of the file at path.
	ReadTextFile(path string) (string, error)
	// WriteTextFile replaces the content of the file at path, creating it
	// if needed.
	WriteTextFile(path, text string) error
	// Mkdir creates a directory. Without recursive the parent must exist.
	// Creating a directory that already exists is not an error.
	Mkdir(path string, recursive bool) error
	// ReadDir lists the immediate entries of a directory.
	ReadDir(path string) ([]DirEntry, error)
	// CopyFile duplicates src at dest. Directories are copied recursively.
	CopyFile(src, dest string) error
	// Rename moves src to dest.
	Rename(src, dest string) error
	// Remove deletes path. Non-empty directories need recursive.
	Remove(path string, recursive bool) error

	Join(elem ...string) string
	Basename(path string) string
	Dirname(path string) string
	// Extname returns the extension of path without its leading dot.
	Extname(path string) string
}
