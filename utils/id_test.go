package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	id := NewID("ISS")
	require.True(t, strings.HasPrefix(id, "ISS"))
	require.Len(t, id, len("ISS")+8)
	require.Equal(t, strings.ToUpper(id), id)
}

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("LF")
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
