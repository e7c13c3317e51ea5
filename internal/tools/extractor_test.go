package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	scan := registry.Get("scan")
	require.NotNil(t, scan)
	assert.Equal(t, "scan", scan.Name())

	assert.Nil(t, registry.Get("sitter"))

	sitterExtractor, err := NewSitterExtractor()
	require.NoError(t, err)
	registry.Register(sitterExtractor)

	assert.Equal(t, sitterExtractor, registry.Get("sitter"))
}
