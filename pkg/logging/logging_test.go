package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		log         func(l Logger)
		wantContain string
		wantEmpty   bool
	}{
		{
			name:        "info is always written",
			log:         func(l Logger) { l.Info("scanned %d entries", 3) },
			wantContain: "scanned 3 entries",
		},
		{
			name:        "error carries a prefix",
			log:         func(l Logger) { l.Error("failed to heal %s", "a.GET") },
			wantContain: "failed to heal a.GET",
		},
		{
			name:      "verbose is dropped when disabled",
			log:       func(l Logger) { l.Verbose("skipping %s", "readme.txt") },
			wantEmpty: true,
		},
		{
			name:        "verbose is written when enabled",
			verbose:     true,
			log:         func(l Logger) { l.Verbose("skipping %s", "readme.txt") },
			wantContain: "skipping readme.txt",
		},
		{
			name:        "format without args is written literally",
			log:         func(l Logger) { l.Info("scan complete") },
			wantContain: "scan complete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWriterLogger(&buf, tt.verbose))

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantContain)
			assert.True(t, strings.HasSuffix(buf.String(), "\n"))
		})
	}
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var l Logger = NewNullLogger()
	assert.NotPanics(t, func() {
		l.Verbose("a")
		l.Info("b %d", 1)
		l.Error("c")
	})
}
