package rest

import "fmt"

// ImportSource is a normalized request description produced by an importer
// (saved-request YAML, curl, ...). The manager never parses foreign formats.
type ImportSource struct {
	Name   string
	Method Method // GET when empty
	Path   string // destination folder, the root when empty
	URL    string
	// Headers keep the producer's order.
	Headers []KeyValue
	// Body is nil for none, a string for a text body, anything else is
	// stored JSON-serialized.
	Body interface{}
}

// Importer turns import sources into request files.
type Importer struct {
	rest *Manager
}

// NewImporter creates an importer writing through m.
func NewImporter(m *Manager) *Importer {
	return &Importer{rest: m}
}

// Import creates the request, applies the source fields and saves it.
func (i *Importer) Import(src ImportSource) (*RequestEntity, error) {
	if src.Name == "" {
		return nil, fmt.Errorf("import name is required")
	}

	method := src.Method
	if method == "" {
		method = GET
	}

	entity, err := i.rest.Create(src.Name, method, src.Path)
	if err != nil {
		return nil, err
	}

	if src.URL != "" {
		entity.SetURL(src.URL)
	}
	if len(src.Headers) > 0 {
		entity.SetHeaders(src.Headers)
	}
	if src.Body != nil && src.Body != "" {
		body, err := bodyFromValue(src.Body)
		if err != nil {
			return nil, err
		}
		entity.SetBody(body)
	}

	if err := entity.Save(); err != nil {
		return nil, err
	}
	return entity, nil
}

func bodyFromValue(v interface{}) (Body, error) {
	switch b := v.(type) {
	case string:
		return TextBody(b), nil
	case Body:
		return b, nil
	default:
		return JSONBodyOf(v)
	}
}
