// Package workspace opens a directory as a reqtree workspace: it owns the
// workspace metadata file, the request tree below it and the list of recently
// opened workspaces.
package workspace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/logging"
	"github.com/blackcoderx/reqtree/pkg/rest"
)

const (
	// MetadataFile is the workspace metadata file name.
	MetadataFile = "workspace.json"
	// DefaultRequestsDir holds the request tree inside a workspace.
	DefaultRequestsDir = "http"
	// DefaultName is used when the workspace path has no usable last element.
	DefaultName = "New Workspace"
)

// Workspace is an opened workspace directory.
type Workspace struct {
	fs       fsys.FileSystem
	path     string
	metadata *Metadata
	rest     *rest.Manager
	logger   logging.Logger
}

type options struct {
	logger       logging.Logger
	requestsDir  string
	history      *Store
	historyLimit int
	restOpts     []rest.Option
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger shared by the workspace and its request tree.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRequestsDir overrides the request tree directory, relative to the
// workspace.
func WithRequestsDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.requestsDir = dir
		}
	}
}

// WithHistory records the workspace in store when it is opened.
func WithHistory(store *Store, limit int) Option {
	return func(o *options) {
		o.history = store
		o.historyLimit = limit
	}
}

// WithRestOptions forwards options to the request tree manager.
func WithRestOptions(opts ...rest.Option) Option {
	return func(o *options) {
		o.restOpts = append(o.restOpts, opts...)
	}
}

// Open loads the workspace at path, creating its metadata when absent.
func Open(fs fsys.FileSystem, path string, opts ...Option) (*Workspace, error) {
	o := options{
		logger:       logging.NewNullLogger(),
		requestsDir:  DefaultRequestsDir,
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}

	w := &Workspace{fs: fs, path: path, logger: o.logger}
	if err := w.loadMetadata(); err != nil {
		return nil, err
	}

	restOpts := append([]rest.Option{rest.WithLogger(o.logger)}, o.restOpts...)
	w.rest = rest.NewManager(fs, w.ResolvePath(o.requestsDir), restOpts...)

	if o.history != nil {
		w.saveHistory(o.history, o.historyLimit)
	}
	return w, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string { return w.path }

// Metadata returns the workspace identity. Renaming it persists immediately.
func (w *Workspace) Metadata() *Metadata { return w.metadata }

// Rest returns the request tree manager of the workspace.
func (w *Workspace) Rest() *rest.Manager { return w.rest }

// ResolvePath returns the location of file inside the workspace. A workspace
// path whose last elements are file is returned unchanged.
func (w *Workspace) ResolvePath(file string) string {
	if w.endsWith(file) {
		return w.path
	}
	return w.fs.Join(w.path, file)
}

// endsWith compares whole path elements, so "/p/myhttp" does not end with
// "http".
func (w *Workspace) endsWith(file string) bool {
	if file == "" {
		return false
	}
	path := w.path
	for file != "." && file != w.fs.Dirname(file) {
		if w.fs.Basename(path) != w.fs.Basename(file) {
			return false
		}
		path, file = w.fs.Dirname(path), w.fs.Dirname(file)
	}
	return true
}

func (w *Workspace) loadMetadata() error {
	path := w.ResolvePath(MetadataFile)

	ok, err := w.fs.Exists(path)
	if err != nil {
		return err
	}

	if ok {
		text, err := w.fs.ReadTextFile(path)
		if err != nil {
			return err
		}
		w.metadata, err = parseMetadata(text)
		if err != nil {
			return err
		}
		w.metadata.OnChange(w.persistMetadata)
		return nil
	}

	w.metadata = newMetadata(uuid.New().String(), w.defaultName())
	w.metadata.OnChange(w.persistMetadata)
	return w.writeMetadata()
}

func (w *Workspace) defaultName() string {
	name := w.fs.Basename(w.path)
	switch name {
	case "", ".", "/", "\\":
		return DefaultName
	}
	return name
}

func (w *Workspace) persistMetadata(*Metadata) {
	if err := w.writeMetadata(); err != nil {
		w.logger.Error("failed to persist workspace metadata: %v", err)
	}
}

func (w *Workspace) writeMetadata() error {
	data, err := w.metadata.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal workspace metadata: %w", err)
	}
	if err := w.fs.WriteTextFile(w.ResolvePath(MetadataFile), string(data)); err != nil {
		return fmt.Errorf("failed to write workspace metadata: %w", err)
	}
	return nil
}

// saveHistory logs failures instead of returning them.
func (w *Workspace) saveHistory(store *Store, limit int) {
	err := store.Record(Entry{Name: w.metadata.Name(), Path: w.path}, limit)
	if err != nil {
		w.logger.Error("failed to update workspace history: %v", err)
	}
}
