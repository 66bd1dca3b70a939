package workspace

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/blackcoderx/reqtree/pkg/fsys"
)

// DefaultHistoryLimit caps the number of remembered workspaces.
const DefaultHistoryLimit = 10

// Entry is one recently opened workspace.
type Entry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Store keeps the recently opened workspaces in a YAML file, most recent
// first.
type Store struct {
	fs   fsys.FileSystem
	path string
}

// NewStore creates a history store backed by the file at path.
func NewStore(fs fsys.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// History returns the remembered workspaces. A missing file is an empty
// history.
func (s *Store) History() ([]Entry, error) {
	ok, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Entry{}, nil
	}

	text, err := s.fs.ReadTextFile(s.path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := yaml.Unmarshal([]byte(text), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Record refreshes the name of the entry with the same path, or puts entry
// first when the path is new. The list is then truncated to limit.
func (s *Store) Record(entry Entry, limit int) error {
	entries, err := s.History()
	if err != nil {
		return err
	}

	found := false
	for i := range entries {
		if entries[i].Path == entry.Path {
			entries[i].Name = entry.Name
			found = true
			break
		}
	}
	if !found {
		entries = append([]Entry{entry}, entries...)
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return s.write(entries)
}

// Clear forgets every workspace.
func (s *Store) Clear() error {
	return s.write([]Entry{})
}

func (s *Store) write(entries []Entry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := s.fs.WriteTextFile(s.path, string(data)); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
