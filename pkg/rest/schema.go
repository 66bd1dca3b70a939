package rest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchemaSource describes the persisted form of a request record.
// Anything that fails it is treated as corrupted and healed on open.
const recordSchemaSource = `{
  "type": "object",
  "required": ["name", "method"],
  "properties": {
    "name": {"type": "string"},
    "method": {"enum": ["GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"]},
    "url": {"type": "string"},
    "headers": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["key", "value"],
        "properties": {
          "key": {"type": "string"},
          "value": {"type": "string"}
        }
      }
    },
    "body": {
      "type": ["object", "null"],
      "minProperties": 1,
      "maxProperties": 1,
      "additionalProperties": false,
      "properties": {
        "text": {"type": "string"},
        "json": {"type": "string"}
      }
    },
    "path": {"type": "string"}
  }
}`

var recordSchema = mustCompileSchema(recordSchemaSource)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid record schema: %v", err))
	}
	return schema
}

// Record is the serialized form of a request file.
type Record struct {
	Name     string          `json:"name"`
	Method   Method          `json:"method"`
	URL      string          `json:"url"`
	Headers  []KeyValue      `json:"headers"`
	Body     Body            `json:"body"`
	Path     string          `json:"path"`
	Response json.RawMessage `json:"response"`
}

// KeyValue is one header line. Keys are not required to be unique.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseRecord validates text against the record schema and decodes it.
func ParseRecord(text string) (Record, error) {
	result, err := recordSchema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return Record{}, fmt.Errorf("failed to parse record: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Record{}, fmt.Errorf("invalid record: %s", strings.Join(msgs, "; "))
	}

	var rec Record
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	if rec.Headers == nil {
		rec.Headers = []KeyValue{}
	}
	if len(rec.Response) == 0 || string(rec.Response) == "null" {
		rec.Response = nil
	}
	return rec, nil
}

// Encode serializes the record as indented JSON.
func (r Record) Encode() (string, error) {
	if r.Headers == nil {
		r.Headers = []KeyValue{}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}
	return string(data) + "\n", nil
}
