package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "http://127.0.0.1:8000", want: "http_127.0.0.1_8000"},
		{raw: "https://Dash.Witrix.example/api", want: "https_dash.witrix.example_443"},
		{raw: "http://localhost", want: "http_localhost_80"},
		{raw: "http://[::1]:9000", want: "http___1_9000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Namespace(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamespaceRejectsRelativeURL(t *testing.T) {
	t.Parallel()

	_, err := Namespace("/api")
	require.ErrorContains(t, err, "must include scheme and host")
}
