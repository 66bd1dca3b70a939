package rest

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/reqtree/pkg/fsys"
)

const testRoot = "/ws/http"

func newTestManager(t *testing.T, opts ...Option) (*Manager, fsys.FileSystem) {
	t.Helper()
	fs := fsys.NewMemory()
	return NewManager(fs, testRoot, opts...), fs
}

func writeFile(t *testing.T, fs fsys.FileSystem, path, text string) {
	t.Helper()
	require.NoError(t, fs.WriteTextFile(path, text))
}

func readFile(t *testing.T, fs fsys.FileSystem, path string) string {
	t.Helper()
	text, err := fs.ReadTextFile(path)
	require.NoError(t, err)
	return text
}

func exists(t *testing.T, fs fsys.FileSystem, path string) bool {
	t.Helper()
	ok, err := fs.Exists(path)
	require.NoError(t, err)
	return ok
}

// snapshot maps every file under dir to its content and every directory to
// the marker "<dir>".
func snapshot(t *testing.T, fs fsys.FileSystem, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	var walk func(string)
	walk = func(d string) {
		entries, err := fs.ReadDir(d)
		require.NoError(t, err)
		for _, e := range entries {
			p := fs.Join(d, e.Name)
			if e.IsDirectory {
				out[p] = "<dir>"
				walk(p)
				continue
			}
			out[p] = readFile(t, fs, p)
		}
	}
	walk(dir)
	return out
}

func names(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.NodeName())
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
