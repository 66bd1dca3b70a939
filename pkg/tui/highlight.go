package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// RecordMarkdown describes a request as markdown: method and name, URL,
// headers table, body and the last stored response.
func RecordMarkdown(rec rest.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s %s\n\n", rec.Method, rec.Name)

	if rec.URL != "" {
		fmt.Fprintf(&sb, "`%s`\n\n", rec.URL)
	}

	if len(rec.Headers) > 0 {
		sb.WriteString("| Header | Value |\n|---|---|\n")
		for _, h := range rec.Headers {
			fmt.Fprintf(&sb, "| %s | %s |\n", escapeCell(h.Key), escapeCell(h.Value))
		}
		sb.WriteString("\n")
	}

	switch rec.Body.Kind {
	case rest.BodyJSON:
		sb.WriteString("## Body\n\n```json\n" + prettyJSON(rec.Body.Content) + "\n```\n\n")
	case rest.BodyText:
		sb.WriteString("## Body\n\n```text\n" + rec.Body.Content + "\n```\n\n")
	}

	if len(rec.Response) > 0 {
		sb.WriteString("## Last response\n\n```json\n" + prettyJSON(string(rec.Response)) + "\n```\n")
	}

	return sb.String()
}

// RenderRecord renders RecordMarkdown with glamour, word-wrapped at width.
// The raw markdown is returned when rendering fails.
func RenderRecord(rec rest.Record, width int) string {
	md := RecordMarkdown(rec)

	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// prettyJSON indents valid JSON and returns anything else unchanged.
func prettyJSON(input string) string {
	var js interface{}
	if json.Unmarshal([]byte(input), &js) != nil {
		return input
	}
	pretty, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return input
	}
	return string(pretty)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
