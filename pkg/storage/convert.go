package storage

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/rest"
)

// LoadFile reads a YAML file holding either one request or a collection. A
// single request is returned as an unnamed collection of one.
func LoadFile(fs fsys.FileSystem, filePath string) (*Collection, error) {
	text, err := fs.ReadTextFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var probe struct {
		Requests []Request `yaml:"requests"`
	}
	if err := yaml.Unmarshal([]byte(text), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if probe.Requests != nil {
		var col Collection
		if err := yaml.Unmarshal([]byte(text), &col); err != nil {
			return nil, fmt.Errorf("failed to parse collection: %w", err)
		}
		return &col, nil
	}

	req, err := LoadRequest(fs, filePath)
	if err != nil {
		return nil, err
	}
	return &Collection{Requests: []Request{*req}}, nil
}

// ToImportSource maps a saved request onto the request tree's import format.
// Headers are ordered by key and query parameters are appended to the URL.
func ToImportSource(req Request, dest string) (rest.ImportSource, error) {
	method := rest.GET
	if req.Method != "" {
		m, ok := rest.ParseMethod(req.Method)
		if !ok {
			return rest.ImportSource{}, fmt.Errorf("request %q: %w: %q", req.Name, rest.ErrInvalidMethod, req.Method)
		}
		method = m
	}

	keys := make([]string, 0, len(req.Headers))
	for k := range req.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	headers := make([]rest.KeyValue, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, rest.KeyValue{Key: k, Value: req.Headers[k]})
	}

	return rest.ImportSource{
		Name:    req.Name,
		Method:  method,
		Path:    dest,
		URL:     withQuery(req.URL, req.Query),
		Headers: headers,
		Body:    req.Body,
	}, nil
}

func withQuery(rawURL string, query map[string]string) string {
	if len(query) == 0 {
		return rawURL
	}
	values := url.Values{}
	for k, v := range query {
		values.Set(k, v)
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + values.Encode()
}

// ImportCollection imports every request of col below dest (the tree root
// when empty). A named collection gets a folder of its own.
func ImportCollection(m *rest.Manager, col *Collection, dest string) ([]*rest.RequestEntity, error) {
	if dest == "" {
		dest = m.Root()
	}
	if col.Name != "" {
		if err := m.CreateFolder(col.Name, dest); err != nil {
			return nil, fmt.Errorf("failed to create folder %s: %w", col.Name, err)
		}
		dest = m.FileSystem().Join(dest, col.Name)
	}

	importer := rest.NewImporter(m)
	entities := make([]*rest.RequestEntity, 0, len(col.Requests))
	for _, req := range col.Requests {
		src, err := ToImportSource(req, dest)
		if err != nil {
			return entities, err
		}
		e, err := importer.Import(src)
		if err != nil {
			return entities, fmt.Errorf("failed to import %s: %w", req.Name, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// FromEntity converts a request for export. Repeated header keys keep the
// last value. JSON bodies are exported structured.
func FromEntity(e *rest.RequestEntity) Request {
	rec := e.Record()
	req := Request{
		Name:   rec.Name,
		Method: string(rec.Method),
		URL:    rec.URL,
	}

	if len(rec.Headers) > 0 {
		req.Headers = make(map[string]string, len(rec.Headers))
		for _, h := range rec.Headers {
			req.Headers[h.Key] = h.Value
		}
	}

	switch rec.Body.Kind {
	case rest.BodyText:
		req.Body = rec.Body.Content
	case rest.BodyJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(rec.Body.Content), &v); err != nil {
			req.Body = rec.Body.Content
		} else {
			req.Body = v
		}
	}
	return req
}

// ExportFolder collects every request below folder, depth first.
func ExportFolder(m *rest.Manager, folder *rest.FolderNode) (Collection, error) {
	col := Collection{Name: folder.Name, Requests: []Request{}}
	if err := collect(m, folder.Children, &col); err != nil {
		return Collection{}, err
	}
	return col, nil
}

func collect(m *rest.Manager, nodes []rest.Node, col *Collection) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *rest.FolderNode:
			if err := collect(m, n.Children, col); err != nil {
				return err
			}
		case *rest.RequestNode:
			e, err := m.Open(n.Path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", n.Path, err)
			}
			if e != nil {
				col.Requests = append(col.Requests, FromEntity(e))
			}
		}
	}
	return nil
}
