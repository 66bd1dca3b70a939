package rest

import (
	"encoding/json"
	"fmt"
)

// RequestEntity is one request record materialized from (or bound to) a file.
// Setters mark it dirty and notify the change callback; nothing reaches disk
// until Save is called, unless the callback saves.
type RequestEntity struct {
	manager  *Manager
	record   Record
	dirty    bool
	onChange func(*RequestEntity)
}

func newEntity(m *Manager, rec Record) *RequestEntity {
	if rec.Headers == nil {
		rec.Headers = []KeyValue{}
	}
	return &RequestEntity{manager: m, record: rec}
}

// Name returns the request name, without the method extension.
func (e *RequestEntity) Name() string { return e.record.Name }

// Method returns the HTTP method.
func (e *RequestEntity) Method() Method { return e.record.Method }

// URL returns the request URL.
func (e *RequestEntity) URL() string { return e.record.URL }

// Body returns the request body.
func (e *RequestEntity) Body() Body { return e.record.Body }

// Path returns the file the entity is bound to.
func (e *RequestEntity) Path() string { return e.record.Path }

// Response returns the last stored response, nil when there is none.
func (e *RequestEntity) Response() json.RawMessage { return e.record.Response }

// Headers returns a copy of the header list.
func (e *RequestEntity) Headers() []KeyValue {
	out := make([]KeyValue, len(e.record.Headers))
	copy(out, e.record.Headers)
	return out
}

// Dirty reports whether the entity changed since it was last saved.
func (e *RequestEntity) Dirty() bool { return e.dirty }

// Record returns a snapshot of the serialized form.
func (e *RequestEntity) Record() Record {
	rec := e.record
	rec.Headers = e.Headers()
	return rec
}

// OnChange registers fn to run synchronously after every setter call.
// Passing nil removes the callback.
func (e *RequestEntity) OnChange(fn func(*RequestEntity)) {
	e.onChange = fn
}

// SetName changes the stored name. The file is not renamed.
func (e *RequestEntity) SetName(name string) {
	e.record.Name = name
	e.changed()
}

// SetURL replaces the request URL.
func (e *RequestEntity) SetURL(url string) {
	e.record.URL = url
	e.changed()
}

// SetHeaders replaces the header list with a copy of headers.
func (e *RequestEntity) SetHeaders(headers []KeyValue) {
	e.record.Headers = make([]KeyValue, len(headers))
	copy(e.record.Headers, headers)
	e.changed()
}

// SetBody replaces the request body.
func (e *RequestEntity) SetBody(body Body) {
	e.record.Body = body
	e.changed()
}

// SetResponse stores the last execution result. The content is opaque here;
// it only has to be valid JSON.
func (e *RequestEntity) SetResponse(response json.RawMessage) error {
	if len(response) > 0 && !json.Valid(response) {
		return fmt.Errorf("response is not valid JSON")
	}
	e.record.Response = response
	e.changed()
	return nil
}

func (e *RequestEntity) changed() {
	e.dirty = true
	if e.onChange != nil {
		e.onChange(e)
	}
}

// Save writes the full record to the entity's path, replacing the file.
func (e *RequestEntity) Save() error {
	text, err := e.record.Encode()
	if err != nil {
		return err
	}
	if err := e.manager.fs.WriteTextFile(e.record.Path, text); err != nil {
		return fmt.Errorf("failed to save request %s: %w", e.record.Path, err)
	}
	e.dirty = false
	return nil
}

// MarshalJSON implements json.Marshaler using the persisted form.
func (e *RequestEntity) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}
