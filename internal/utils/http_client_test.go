package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	require.NotNil(t, client2.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.NotNil(t, client1.R())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{raw: "localhost:8080", expected: "http://localhost:8080"},
		{raw: "  http://scanner.local:9000/ ", expected: "http://scanner.local:9000"},
		{raw: "https://scanner.example.com/base/", expected: "https://scanner.example.com/base"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	a, b := gen.Generate(), gen.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
