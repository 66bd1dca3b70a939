package rest

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchResult is a request matched by Search.
type SearchResult struct {
	Request *RequestNode
	// Rel is the request path relative to the searched root.
	Rel string
	// Matched holds the byte offsets of Rel that matched the pattern.
	Matched []int
}

type requestSource struct {
	requests []*RequestNode
	rels     []string
}

func (s requestSource) String(i int) string { return s.rels[i] }
func (s requestSource) Len() int            { return len(s.rels) }

// Search fuzzy-matches pattern against the relative path of every request in
// nodes, best matches first. An empty pattern lists every request in tree
// order.
func Search(nodes []Node, root, pattern string) []SearchResult {
	src := requestSource{}
	collectRequests(nodes, strings.TrimSuffix(root, "/")+"/", &src)

	if pattern == "" {
		results := make([]SearchResult, len(src.requests))
		for i, r := range src.requests {
			results[i] = SearchResult{Request: r, Rel: src.rels[i]}
		}
		return results
	}

	matches := fuzzy.FindFrom(pattern, src)
	results := make([]SearchResult, len(matches))
	for i, match := range matches {
		results[i] = SearchResult{
			Request: src.requests[match.Index],
			Rel:     match.Str,
			Matched: match.MatchedIndexes,
		}
	}
	return results
}

func collectRequests(nodes []Node, prefix string, src *requestSource) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *FolderNode:
			collectRequests(n.Children, prefix, src)
		case *RequestNode:
			src.requests = append(src.requests, n)
			src.rels = append(src.rels, strings.TrimPrefix(n.Path, prefix))
		}
	}
}
