package workspace

import (
	"encoding/json"
	"fmt"
)

// Metadata identifies a workspace. It is stored as {"id", "name"}.
type Metadata struct {
	id       string
	name     string
	onChange func(*Metadata)
}

type rawMetadata struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newMetadata(id, name string) *Metadata {
	return &Metadata{id: id, name: name}
}

func parseMetadata(text string) (*Metadata, error) {
	var raw rawMetadata
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse workspace metadata: %w", err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("failed to parse workspace metadata: missing id")
	}
	return newMetadata(raw.ID, raw.Name), nil
}

// ID returns the workspace id.
func (m *Metadata) ID() string { return m.id }

// Name returns the display name of the workspace.
func (m *Metadata) Name() string { return m.name }

// SetName renames the workspace and notifies the change callback.
func (m *Metadata) SetName(name string) {
	m.name = name
	if m.onChange != nil {
		m.onChange(m)
	}
}

// OnChange replaces the change callback.
func (m *Metadata) OnChange(fn func(*Metadata)) {
	m.onChange = fn
}

// MarshalJSON implements json.Marshaler.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawMetadata{ID: m.id, Name: m.name})
}
