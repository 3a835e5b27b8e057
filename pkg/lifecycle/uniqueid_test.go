package lifecycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCodeShape(t *testing.T) {
	code, err := NewOrderCode()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "WD-"))
	assert.Len(t, code, len("WD-")+codeLength)
	for _, c := range code[3:] {
		assert.Contains(t, codeAlphabet, string(c))
	}
}

func TestNewOrderCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := NewOrderCode()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
