package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateBookingCode()
		require.NoError(t, err)

		assert.Len(t, code, 10)
		assert.True(t, strings.HasPrefix(code, "CB"))
		assert.NotContains(t, code[2:], "0")
		assert.NotContains(t, code[2:], "O")
		assert.NotContains(t, code[2:], "I")
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("6000000000"))
	assert.False(t, IsValidPhoneNumber("1234567890"))
	assert.False(t, IsValidPhoneNumber("98765"))
	assert.False(t, IsValidPhoneNumber("+919876543210"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("rider@example.com"))
	assert.False(t, IsValidEmail("rider@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "3210", MaskPhoneNumber("3210"))
}
