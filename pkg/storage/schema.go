package storage

// Request is a saved request in the portable YAML format used for import and
// export.
type Request struct {
	Name    string            `yaml:"name"`              // Request name, becomes the file name
	Method  string            `yaml:"method"`            // HTTP method (GET, POST, etc.)
	URL     string            `yaml:"url"`               // Request URL (can contain variables)
	Headers map[string]string `yaml:"headers,omitempty"` // HTTP headers
	Query   map[string]string `yaml:"query,omitempty"`   // Query parameters, merged into the URL on import
	Body    interface{}       `yaml:"body,omitempty"`    // Request body (structured or string)
}

// Collection is an exported folder of requests.
type Collection struct {
	Name        string    `yaml:"name"`                  // Folder name
	Description string    `yaml:"description,omitempty"` // Optional description
	Requests    []Request `yaml:"requests,omitempty"`    // Requests in the folder, nested folders flattened
}
