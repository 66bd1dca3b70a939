package fsys

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Billy implements FileSystem on top of a billy.Filesystem.
type Billy struct {
	fs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(bfs billy.Filesystem) *Billy {
	return &Billy{fs: bfs}
}

// NewOS returns an adapter over the host filesystem. Paths must be absolute.
func NewOS() *Billy {
	return New(osfs.New("/"))
}

// NewMemory returns an adapter over a fresh in-memory filesystem.
func NewMemory() *Billy {
	return New(memfs.New())
}

// Exists implements FileSystem.Exists
func (b *Billy) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// ReadTextFile implements FileSystem.ReadTextFile
func (b *Billy) ReadTextFile(path string) (string, error) {
	f, err := b.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteTextFile implements FileSystem.WriteTextFile
func (b *Billy) WriteTextFile(path, text string) error {
	if err := util.WriteFile(b.fs, path, []byte(text), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Mkdir implements FileSystem.Mkdir
func (b *Billy) Mkdir(path string, recursive bool) error {
	if !recursive {
		parent := filepath.Dir(path)
		if _, err := b.fs.Stat(parent); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	if err := b.fs.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ReadDir implements FileSystem.ReadDir
func (b *Billy) ReadDir(path string) ([]DirEntry, error) {
	infos, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	entries := make([]DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, DirEntry{
			Name:        info.Name(),
			IsDirectory: info.IsDir(),
		})
	}
	return entries, nil
}

// CopyFile implements FileSystem.CopyFile
func (b *Billy) CopyFile(src, dest string) error {
	info, err := b.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if info.IsDir() {
		return b.copyDir(src, dest)
	}
	return b.copyRegular(src, dest, info.Mode().Perm())
}

// copyDir lists src before creating dest, so a dest inside src is copied
// one level deep instead of recursing into itself.
func (b *Billy) copyDir(src, dest string) error {
	infos, err := b.fs.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	if err := b.fs.MkdirAll(dest, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dest, err)
	}

	for _, info := range infos {
		from := b.fs.Join(src, info.Name())
		to := b.fs.Join(dest, info.Name())
		if info.IsDir() {
			err = b.copyDir(from, to)
		} else {
			err = b.copyRegular(from, to, info.Mode().Perm())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Billy) copyRegular(src, dest string, perm os.FileMode) error {
	if perm == 0 {
		perm = filePerm
	}

	in, err := b.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := b.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dest, err)
	}
	return nil
}

// Rename implements FileSystem.Rename
func (b *Billy) Rename(src, dest string) error {
	if err := b.fs.Rename(src, dest); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", src, dest, err)
	}
	return nil
}

// Remove implements FileSystem.Remove
func (b *Billy) Remove(path string, recursive bool) error {
	var err error
	if recursive {
		err = util.RemoveAll(b.fs, path)
	} else {
		err = b.fs.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// Join implements FileSystem.Join
func (b *Billy) Join(elem ...string) string {
	return b.fs.Join(elem...)
}

// Basename implements FileSystem.Basename
func (b *Billy) Basename(path string) string {
	return filepath.Base(path)
}

// Dirname implements FileSystem.Dirname
func (b *Billy) Dirname(path string) string {
	return filepath.Dir(path)
}

// Extname implements FileSystem.Extname
func (b *Billy) Extname(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
