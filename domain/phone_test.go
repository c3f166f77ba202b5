package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "97**********8", MaskPhone("+9779812345678"))
	assert.Equal(t, "hidden", MaskPhone("12"))
	assert.Equal(t, "hidden", MaskPhone(""))
	assert.Equal(t, "hidden", MaskPhone("+1-2"))
	assert.Equal(t, "12*4", MaskPhone("1234"))
	// separators are stripped before masking
	assert.Equal(t, "98*******0", MaskPhone("98-123 456 70"))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+9779812345678", "+1234567", "+123456789012345", "  +9779812345678  "}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}

	invalid := []string{"", "9812345678", "+123456", "+1234567890123456", "+977 9812345678", "+977-98123", "phone"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}

func TestPhonePolicy(t *testing.T) {
	assert.True(t, PhonePolicyExpose.Exposes())
	assert.False(t, PhonePolicyMaskOnly.Exposes())
}
