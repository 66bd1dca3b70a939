package rest

import (
	"errors"
	"fmt"
)

// CopySuffix is appended to the target folder's name when a copy or move
// would land on an existing entry.
const CopySuffix = " - Copy"

// ErrInvalidMethod is returned when creating a request with an unknown method.
var ErrInvalidMethod = errors.New("unsupported HTTP method")

// ErrIntoItself is returned when a folder is copied or moved into itself or
// one of its subfolders.
var ErrIntoItself = errors.New("cannot copy or move a folder into itself")

// Create writes a fresh request "{name}.{METHOD}" under basePath (the root
// when empty) and returns it. An existing file with the same name and method
// is overwritten.
func (m *Manager) Create(name string, method Method, basePath string) (*RequestEntity, error) {
	if err := m.ensureSelf(); err != nil {
		return nil, err
	}
	if !IsMethod(string(method)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if basePath == "" {
		basePath = m.root
	}

	e := m.entity(Record{
		Name:    name,
		Method:  method,
		Headers: []KeyValue{},
		Path:    m.fs.Join(basePath, FileName(name, method)),
	})
	if err := e.Save(); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateFolder creates basePath/name (basePath defaults to the root),
// including missing parents. An existing folder is left alone.
func (m *Manager) CreateFolder(name, basePath string) error {
	if err := m.ensureSelf(); err != nil {
		return err
	}
	if basePath == "" {
		basePath = m.root
	}
	return m.fs.Mkdir(m.fs.Join(basePath, name), true)
}

// Copy duplicates the request or folder at current into the target folder.
func (m *Manager) Copy(current, target string) error {
	return m.relocate(current, target, m.fs.CopyFile)
}

// Move relocates the request or folder at current into the target folder.
func (m *Manager) Move(current, target string) error {
	return m.relocate(current, target, m.fs.Rename)
}

// relocate resolves the destination inside target and applies op. When
// target already holds an entry named like current, the destination becomes
// target/"{target name} - Copy". That entry is not checked again, so a second
// colliding copy overwrites it. A target at or below current is rejected
// before anything is written.
func (m *Manager) relocate(current, target string, op func(src, dest string) error) error {
	if err := m.ensureSelf(); err != nil {
		return err
	}

	ok, err := m.fs.Exists(current)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if m.within(target, current) {
		return fmt.Errorf("%w: %s", ErrIntoItself, current)
	}

	dest := m.fs.Join(target, m.fs.Basename(current))
	taken, err := m.fs.Exists(dest)
	if err != nil {
		return err
	}
	if taken {
		dest = m.fs.Join(target, m.fs.Basename(target)+CopySuffix)
	}

	return op(current, dest)
}

// within reports whether path is dir or lies below it.
func (m *Manager) within(path, dir string) bool {
	for {
		if path == dir {
			return true
		}
		parent := m.fs.Dirname(path)
		if parent == path {
			return false
		}
		path = parent
	}
}

// Rename gives the entry at path a new name inside its parent folder. Request
// files keep their method extension; folders are renamed as-is. Nothing
// happens when newName is empty or path does not exist. An existing entry at
// the new path is not checked for.
func (m *Manager) Rename(path, newName string, isDir bool) error {
	if err := m.ensureSelf(); err != nil {
		return err
	}
	if newName == "" {
		return nil
	}

	ok, err := m.fs.Exists(path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	file := newName
	if !isDir {
		if ext := m.fs.Extname(path); ext != "" {
			file += "." + ext
		}
	}

	return m.fs.Rename(path, m.fs.Join(m.fs.Dirname(path), file))
}

// Delete removes the request or folder at path, recursively. A missing path
// is a no-op.
func (m *Manager) Delete(path string) error {
	if err := m.ensureSelf(); err != nil {
		return err
	}

	ok, err := m.fs.Exists(path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return m.fs.Remove(path, true)
}
