package rest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequests_MissingRootIsBootstrapped(t *testing.T) {
	m, fs := newTestManager(t)

	nodes, err := m.GetRequests()
	require.NoError(t, err)
	assert.Empty(t, nodes)
	assert.NotNil(t, nodes)
	assert.True(t, exists(t, fs, testRoot))
}

func TestGetRequests_Scenario(t *testing.T) {
	m, fs := newTestManager(t)

	require.NoError(t, fs.Mkdir(fs.Join(testRoot, "folder1"), true))
	writeFile(t, fs, fs.Join(testRoot, "Login.POST"),
		`{"name":"Login","method":"POST","url":"","headers":[],"body":null,"path":"/ws/http/Login.POST","response":null}`)
	writeFile(t, fs, fs.Join(testRoot, "readme.txt"), "unrelated")

	nodes, err := m.GetRequests()
	require.NoError(t, err)

	data, err := json.Marshal(nodes)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"path":"/ws/http/folder1","method":null,"name":"folder1","children":[]},
		{"path":"/ws/http/Login.POST","method":"POST","name":"Login.POST","children":null}
	]`, string(data))
}

func TestGetRequests_OneNodePerRequestFile(t *testing.T) {
	m, fs := newTestManager(t)

	files := map[string]Method{
		"a.GET":        GET,
		"b.POST":       POST,
		"c.PUT":        PUT,
		"d.PATCH":      PATCH,
		"e.DELETE":     DELETE,
		"f.HEAD":       HEAD,
		"g.OPTIONS":    OPTIONS,
		"v1.users.GET": GET,
	}
	for file := range files {
		writeFile(t, fs, fs.Join(testRoot, file), "{}")
	}
	for _, foreign := range []string{"notes.md", ".GET", "lower.get", "plain"} {
		writeFile(t, fs, fs.Join(testRoot, foreign), "x")
	}

	nodes, err := m.GetRequests()
	require.NoError(t, err)
	require.Len(t, nodes, len(files))

	for _, n := range nodes {
		req, ok := n.(*RequestNode)
		require.True(t, ok, "%s should be a request", n.NodeName())
		assert.Equal(t, files[req.Name], req.Method)
		assert.Equal(t, fs.Join(testRoot, req.Name), req.Path)
	}
}

func TestGetRequests_Ordering(t *testing.T) {
	m, fs := newTestManager(t)

	writeFile(t, fs, fs.Join(testRoot, "Beta.GET"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "alpha.POST"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "Zeta", "inner.GET"), "{}")
	require.NoError(t, fs.Mkdir(fs.Join(testRoot, "accounts"), true))
	writeFile(t, fs, fs.Join(testRoot, "Zeta", "sub", "deep.DELETE"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "Zeta", "another.GET"), "{}")

	nodes, err := m.GetRequests()
	require.NoError(t, err)

	assert.Equal(t, []string{"accounts", "Zeta", "alpha.POST", "Beta.GET"}, names(nodes))

	zeta, ok := nodes[1].(*FolderNode)
	require.True(t, ok)
	assert.Equal(t, []string{"sub", "another.GET", "inner.GET"}, names(zeta.Children))

	sub, ok := zeta.Children[0].(*FolderNode)
	require.True(t, ok)
	assert.Equal(t, []string{"deep.DELETE"}, names(sub.Children))

	accounts, ok := nodes[0].(*FolderNode)
	require.True(t, ok)
	assert.NotNil(t, accounts.Children)
	assert.Empty(t, accounts.Children)
}

func TestGetRequests_FoldersAlwaysPrecedeRequests(t *testing.T) {
	m, fs := newTestManager(t)

	writeFile(t, fs, fs.Join(testRoot, "a.GET"), "{}")
	require.NoError(t, fs.Mkdir(fs.Join(testRoot, "zz"), true))
	writeFile(t, fs, fs.Join(testRoot, "zz", "b.GET"), "{}")
	require.NoError(t, fs.Mkdir(fs.Join(testRoot, "zz", "yy"), true))

	nodes, err := m.GetRequests()
	require.NoError(t, err)

	var check func([]Node)
	check = func(level []Node) {
		seenRequest := false
		for _, n := range level {
			switch n := n.(type) {
			case *FolderNode:
				assert.False(t, seenRequest, "folder %s sorted after a request", n.Name)
				check(n.Children)
			case *RequestNode:
				seenRequest = true
			}
		}
	}
	check(nodes)
}

func TestGetRequests_Idempotent(t *testing.T) {
	m, fs := newTestManager(t)

	writeFile(t, fs, fs.Join(testRoot, "x", "one.GET"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "two.POST"), "{}")

	first, err := m.GetRequests()
	require.NoError(t, err)
	second, err := m.GetRequests()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAsTree(t *testing.T) {
	m, fs := newTestManager(t)

	require.NoError(t, fs.Mkdir(fs.Join(testRoot, "empty"), true))
	writeFile(t, fs, fs.Join(testRoot, "users", "list.GET"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "health.GET"), "{}")

	tree, err := m.GetAsTree()
	require.NoError(t, err)
	require.Len(t, tree, 3)

	assert.True(t, tree[0].IsFolder())
	assert.Equal(t, fs.Join(testRoot, "empty"), tree[0].ID)
	assert.False(t, tree[2].IsFolder())

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"/ws/http/empty","name":"empty","children":[]},
		{"id":"/ws/http/users","name":"users","children":[{"id":"/ws/http/users/list.GET","name":"list.GET"}]},
		{"id":"/ws/http/health.GET","name":"health.GET"}
	]`, string(data))
}

func TestFindNode(t *testing.T) {
	m, fs := newTestManager(t)

	writeFile(t, fs, fs.Join(testRoot, "users", "admins", "list.GET"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "health.GET"), "{}")

	nodes, err := m.GetRequests()
	require.NoError(t, err)

	admins := FindNode(nodes, fs.Join(testRoot, "users", "admins"))
	require.NotNil(t, admins)
	assert.IsType(t, &FolderNode{}, admins)

	list := FindNode(nodes, fs.Join(testRoot, "users", "admins", "list.GET"))
	require.NotNil(t, list)
	assert.Equal(t, GET, list.(*RequestNode).Method)

	assert.Nil(t, FindNode(nodes, fs.Join(testRoot, "missing.GET")))
}
