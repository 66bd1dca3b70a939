package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWithin(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative", path: "users/list.GET", want: "/ws/http/users/list.GET"},
		{name: "root itself", path: ".", want: "/ws/http"},
		{name: "absolute inside", path: "/ws/http/a.GET", want: "/ws/http/a.GET"},
		{name: "cleaned", path: "users/../a.GET", want: "/ws/http/a.GET"},
		{name: "traversal", path: "../secrets", wantErr: true},
		{name: "absolute outside", path: "/etc/passwd", wantErr: true},
		{name: "sibling prefix", path: "/ws/http-evil/a.GET", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWithin(tt.path, "/ws/http")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
