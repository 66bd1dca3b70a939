package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// RenderTree draws nodes below a root label for non-interactive output.
func RenderTree(rootLabel string, nodes []rest.Node) string {
	t := tree.Root(rootLabel).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(HelpStyle)
	addNodes(t, nodes)
	return t.String()
}

func addNodes(t *tree.Tree, nodes []rest.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *rest.FolderNode:
			sub := tree.Root(FolderStyle.Render(n.Name)).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(HelpStyle)
			addNodes(sub, n.Children)
			t.Child(sub)
		case *rest.RequestNode:
			label := strings.TrimSuffix(n.Name, "."+string(n.Method))
			t.Child(MethodStyle(n.Method).Render(string(n.Method)) + RequestStyle.Render(label))
		}
	}
}
