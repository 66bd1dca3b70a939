package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	m, fs := newTestManager(t)

	writeFile(t, fs, fs.Join(testRoot, "users", "list.GET"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "users", "create.POST"), "{}")
	writeFile(t, fs, fs.Join(testRoot, "health.GET"), "{}")

	nodes, err := m.GetRequests()
	require.NoError(t, err)

	all := Search(nodes, testRoot, "")
	rels := make([]string, len(all))
	for i, r := range all {
		rels[i] = r.Rel
	}
	assert.Equal(t, []string{"users/create.POST", "users/list.GET", "health.GET"}, rels)

	results := Search(nodes, testRoot, "uslist")
	require.NotEmpty(t, results)
	assert.Equal(t, "users/list.GET", results[0].Rel)
	assert.Equal(t, fs.Join(testRoot, "users", "list.GET"), results[0].Request.Path)
	assert.NotEmpty(t, results[0].Matched)

	assert.Empty(t, Search(nodes, testRoot, "zzzz"))
}
