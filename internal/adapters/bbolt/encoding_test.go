package bbolt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/ktags/internal/ports"
)

func TestPostingLists_Roundtrip(t *testing.T) {
	names := map[string][]ports.TagRef{
		"greeter": {{FileID: 1, Line: 1}},
		"max":     {{FileID: 2, Line: 4}, {FileID: 2, Line: 70000}},
		"empty":   {},
	}

	data, err := encodePostingLists(names)
	require.NoError(t, err)

	decoded, err := decodePostingLists(data)
	require.NoError(t, err)

	assert.Equal(t, names["greeter"], decoded["greeter"])
	assert.Equal(t, names["max"], decoded["max"])
	assert.Len(t, decoded["empty"], 0)

	// Lines above uint16 range survive (refs are uint32 on both sides).
	assert.Equal(t, uint32(70000), decoded["max"][1].Line)
}

func TestPostingLists_EmptyMap(t *testing.T) {
	data, err := encodePostingLists(map[string][]ports.TagRef{})
	require.NoError(t, err)

	decoded, err := decodePostingLists(data)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestPostingLists_Deterministic(t *testing.T) {
	names := map[string][]ports.TagRef{
		"b": {{FileID: 2, Line: 2}},
		"a": {{FileID: 1, Line: 1}},
		"c": {{FileID: 3, Line: 3}},
	}
	first, err := encodePostingLists(names)
	require.NoError(t, err)
	second, err := encodePostingLists(names)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPostingLists_CorruptDataFailsCleanly(t *testing.T) {
	good, err := encodePostingLists(map[string][]ports.TagRef{
		"greeter": {{FileID: 1, Line: 1}},
	})
	require.NoError(t, err)

	// Truncation at every prefix length must error, never panic.
	for cut := 0; cut < len(good); cut++ {
		_, err := decodePostingLists(good[:cut])
		assert.Error(t, err, "cut at %d", cut)
	}
}
