package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BodyKind tags the variant held by a Body.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyText
	BodyJSON
)

// String implements fmt.Stringer.
func (k BodyKind) String() string {
	switch k {
	case BodyText:
		return "text"
	case BodyJSON:
		return "json"
	default:
		return "none"
	}
}

// Body is a request body: nothing, raw text, or JSON kept in serialized form.
// On disk it is null, {"text": "..."} or {"json": "..."}.
type Body struct {
	Kind    BodyKind
	Content string
}

// NoBody returns the empty body.
func NoBody() Body { return Body{} }

// TextBody returns a raw text body.
func TextBody(text string) Body { return Body{Kind: BodyText, Content: text} }

// JSONBody returns a body holding already serialized JSON.
func JSONBody(serialized string) Body { return Body{Kind: BodyJSON, Content: serialized} }

// JSONBodyOf serializes v and wraps it as a JSON body.
func JSONBodyOf(v interface{}) (Body, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Body{}, fmt.Errorf("failed to marshal body: %w", err)
	}
	return JSONBody(string(data)), nil
}

// IsEmpty reports whether the body holds nothing.
func (b Body) IsEmpty() bool { return b.Kind == BodyNone }

// MarshalJSON implements json.Marshaler.
func (b Body) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BodyText:
		return json.Marshal(struct {
			Text string `json:"text"`
		}{b.Content})
	case BodyJSON:
		return json.Marshal(struct {
			JSON string `json:"json"`
		}{b.Content})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Body) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = NoBody()
		return nil
	}

	var raw struct {
		Text *string `json:"text"`
		JSON *string `json:"json"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}

	switch {
	case raw.Text != nil && raw.JSON != nil:
		return fmt.Errorf("invalid body: both text and json set")
	case raw.Text != nil:
		*b = TextBody(*raw.Text)
	case raw.JSON != nil:
		*b = JSONBody(*raw.JSON)
	default:
		return fmt.Errorf("invalid body: expected text or json")
	}
	return nil
}
