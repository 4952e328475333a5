package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementationFromIndex(t *testing.T) {
	tests := []struct {
		name      string
		index     uint8
		expected  Implementation
		expectErr bool
	}{
		{"standard", 0, ImplementationStandard, false},
		{"seeded", 1, ImplementationSeeded, false},
		{"out of range", 2, "", true},
		{"far out of range", 255, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impl, err := ImplementationFromIndex(tt.index)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, impl)
		})
	}
}

func TestURLKindFromIndex(t *testing.T) {
	tests := []struct {
		name      string
		index     uint8
		expected  URLKind
		expectErr bool
	}{
		{"image", 0, URLKindImage, false},
		{"animation", 1, URLKindAnimation, false},
		{"patch notes", 2, URLKindPatchNotes, false},
		{"out of range", 3, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := URLKindFromIndex(tt.index)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestURLKinds(t *testing.T) {
	kinds := URLKinds()

	assert.Equal(t, []URLKind{URLKindImage, URLKindAnimation, URLKindPatchNotes}, kinds)

	// every slot index must resolve to the kind at the same position
	for i, kind := range kinds {
		resolved, err := URLKindFromIndex(uint8(i)) //nolint:gosec
		require.NoError(t, err)
		assert.Equal(t, kind, resolved)
	}
}
