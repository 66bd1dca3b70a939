package rest

import (
	"encoding/json"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Node is one entry of a scanned request tree: either a *FolderNode or a
// *RequestNode.
type Node interface {
	NodeName() string
	NodePath() string
	isNode()
}

// FolderNode is a directory. Children is never nil.
type FolderNode struct {
	Name     string
	Path     string
	Children []Node
}

// RequestNode is a request file. Name is the full filename, extension
// included.
type RequestNode struct {
	Name   string
	Path   string
	Method Method
}

// NodeName implements Node.
func (f *FolderNode) NodeName() string { return f.Name }
func (f *FolderNode) NodePath() string { return f.Path }
func (f *FolderNode) isNode()          {}

// NodeName implements Node.
func (r *RequestNode) NodeName() string { return r.Name }
func (r *RequestNode) NodePath() string { return r.Path }
func (r *RequestNode) isNode()          {}

// nodeJSON is the wire shape shared by both node kinds: folders have a null
// method, requests have null children.
type nodeJSON struct {
	Path     string  `json:"path"`
	Method   *Method `json:"method"`
	Name     string  `json:"name"`
	Children []Node  `json:"children"`
}

// MarshalJSON implements json.Marshaler.
func (f *FolderNode) MarshalJSON() ([]byte, error) {
	children := f.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(nodeJSON{Path: f.Path, Name: f.Name, Children: children})
}

// MarshalJSON implements json.Marshaler.
func (r *RequestNode) MarshalJSON() ([]byte, error) {
	method := r.Method
	return json.Marshal(nodeJSON{Path: r.Path, Method: &method, Name: r.Name})
}

// TreeViewElement is the UI projection of a Node. Requests have nil
// Children; folders always have a non-nil slice.
type TreeViewElement struct {
	ID       string
	Name     string
	Children []TreeViewElement
}

// IsFolder reports whether the element projects a folder.
func (e TreeViewElement) IsFolder() bool { return e.Children != nil }

// MarshalJSON implements json.Marshaler. Requests omit the children key.
func (e TreeViewElement) MarshalJSON() ([]byte, error) {
	if e.Children == nil {
		return json.Marshal(struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}{e.ID, e.Name})
	}
	return json.Marshal(struct {
		ID       string            `json:"id"`
		Name     string            `json:"name"`
		Children []TreeViewElement `json:"children"`
	}{e.ID, e.Name, e.Children})
}

// FindNode returns the node at path anywhere in nodes, or nil.
func FindNode(nodes []Node, path string) Node {
	for _, n := range nodes {
		if n.NodePath() == path {
			return n
		}
		if f, ok := n.(*FolderNode); ok {
			if found := FindNode(f.Children, path); found != nil {
				return found
			}
		}
	}
	return nil
}

// ToTreeView projects nodes recursively.
func ToTreeView(nodes []Node) []TreeViewElement {
	out := make([]TreeViewElement, 0, len(nodes))
	for _, n := range nodes {
		el := TreeViewElement{ID: n.NodePath(), Name: n.NodeName()}
		if f, ok := n.(*FolderNode); ok {
			el.Children = ToTreeView(f.Children)
		}
		out = append(out, el)
	}
	return out
}

// newCollator returns the comparator for sibling names. Collators keep
// internal buffers, so each scan gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// sortNodes orders siblings: folders first, then names in collation order.
func sortNodes(nodes []Node, c *collate.Collator) {
	sort.SliceStable(nodes, func(i, j int) bool {
		_, fi := nodes[i].(*FolderNode)
		_, fj := nodes[j].(*FolderNode)
		if fi != fj {
			return fi
		}
		return c.CompareString(nodes[i].NodeName(), nodes[j].NodeName()) < 0
	})
}
