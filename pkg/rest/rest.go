// Package rest manages a tree of HTTP request definitions stored directly as
// a directory hierarchy.
//
// A request is a file named "{name}.{METHOD}" holding a JSON record; a folder
// is a plain directory. There is no index: every read scans the directory
// again, so the filesystem is the only source of truth. Mutations (create,
// rename, copy, move, delete) act on the filesystem directly and treat
// missing sources as no-ops. Files whose name matches the request pattern but
// whose content is not a valid record are rewritten with a minimal valid
// record the next time they are opened.
package rest

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"golang.org/x/text/collate"

	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/logging"
)

// DefaultRequestName names a healed request whose filename has no name part.
const DefaultRequestName = "New request"

// Manager is bound to one root directory for its lifetime. It holds no cached
// state beyond that path.
type Manager struct {
	fs       fsys.FileSystem
	root     string
	logger   logging.Logger
	autoSave bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for heal and scan diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithAutoSave makes every entity handed out by the manager persist itself
// after each setter call.
func WithAutoSave(enabled bool) Option {
	return func(m *Manager) {
		m.autoSave = enabled
	}
}

// NewManager creates a manager rooted at root. The directory is created on
// first use.
func NewManager(fs fsys.FileSystem, root string, opts ...Option) *Manager {
	m := &Manager{
		fs:     fs,
		root:   root,
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the directory the manager is bound to.
func (m *Manager) Root() string { return m.root }

// FileSystem returns the adapter the manager operates on.
func (m *Manager) FileSystem() fsys.FileSystem { return m.fs }

func (m *Manager) ensureSelf() error {
	ok, err := m.fs.Exists(m.root)
	if err != nil {
		return err
	}
	if !ok {
		if err := m.fs.Mkdir(m.root, true); err != nil {
			return fmt.Errorf("failed to create request root: %w", err)
		}
	}
	return nil
}

func (m *Manager) entity(rec Record) *RequestEntity {
	e := newEntity(m, rec)
	if m.autoSave {
		e.OnChange(func(e *RequestEntity) {
			if err := e.Save(); err != nil {
				m.logger.Error("autosave of %s failed: %v", e.Path(), err)
			}
		})
	}
	return e
}

// Open materializes the request stored at path. It returns nil, nil when
// nothing exists there. A file that cannot be parsed as a record is replaced
// by a minimal record derived from its filename, which is then returned.
func (m *Manager) Open(path string) (*RequestEntity, error) {
	if err := m.ensureSelf(); err != nil {
		return nil, err
	}

	ok, err := m.fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	text, err := m.fs.ReadTextFile(path)
	if err != nil {
		return nil, err
	}

	rec, parseErr := ParseRecord(text)
	if parseErr == nil {
		rec.Path = path
		return m.entity(rec), nil
	}

	name, method := m.identityFromPath(path)
	e := m.entity(Record{
		Name:    name,
		Method:  method,
		Headers: []KeyValue{},
		Path:    path,
	})
	if err := e.Save(); err != nil {
		return nil, err
	}

	m.logger.Info("repaired request file %s (%v)", path, parseErr)
	if healed, err := e.record.Encode(); err == nil {
		m.logger.Verbose("%s", unifiedDiff(m.fs.Basename(path), text, healed))
	}
	return e, nil
}

// identityFromPath recovers name and method from a request filename.
func (m *Manager) identityFromPath(path string) (string, Method) {
	base := m.fs.Basename(path)
	ext := m.fs.Extname(path)

	name := base
	if ext != "" {
		name = strings.TrimSuffix(base, "."+ext)
	}
	if name == "" {
		name = DefaultRequestName
	}

	method := GET
	if IsMethod(ext) {
		method = Method(ext)
	}
	return name, method
}

func unifiedDiff(filename, original, modified string) string {
	edits := udiff.Strings(original, modified)
	unified, err := udiff.ToUnified("a/"+filename, "b/"+filename, original, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- a/%s\n+++ b/%s\n(diff generation failed)\n", filename, filename)
	}
	return unified
}

// GetRequests scans the whole tree. A missing root is created and yields an
// empty tree.
func (m *Manager) GetRequests() ([]Node, error) {
	ok, err := m.fs.Exists(m.root)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := m.fs.Mkdir(m.root, true); err != nil {
			return nil, fmt.Errorf("failed to create request root: %w", err)
		}
		return []Node{}, nil
	}
	return m.scan(m.root, newCollator())
}

// GetAsTree scans the tree and projects it for tree widgets.
func (m *Manager) GetAsTree() ([]TreeViewElement, error) {
	nodes, err := m.GetRequests()
	if err != nil {
		return nil, err
	}
	return ToTreeView(nodes), nil
}

func (m *Manager) scan(dir string, c *collate.Collator) ([]Node, error) {
	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		path := m.fs.Join(dir, entry.Name)

		if entry.IsDirectory {
			children, err := m.scan(path, c)
			if err != nil {
				m.logger.Error("skipping unreadable folder %s: %v", path, err)
				continue
			}
			nodes = append(nodes, &FolderNode{Name: entry.Name, Path: path, Children: children})
			continue
		}

		_, method, ok := SplitFileName(entry.Name)
		if !ok {
			m.logger.Verbose("skipping %s: not a request file", path)
			continue
		}
		nodes = append(nodes, &RequestNode{Name: entry.Name, Path: path, Method: method})
	}

	sortNodes(nodes, c)
	return nodes, nil
}
