package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBloodGroup(t *testing.T) {
	for _, bg := range BloodGroups {
		assert.True(t, IsValidBloodGroup(bg))
	}
	assert.False(t, IsValidBloodGroup("C+"))
	assert.False(t, IsValidBloodGroup("o+"))
	assert.False(t, IsValidBloodGroup(""))
}

func TestDonorFilterNormalize(t *testing.T) {
	f := DonorFilter{BloodGroup: "  O+ ", District: "   ", Query: "\tward5 "}
	f.Normalize()

	assert.Equal(t, "O+", f.BloodGroup)
	// whitespace-only means no constraint, not "match empty string"
	assert.Equal(t, "", f.District)
	assert.Equal(t, "ward5", f.Query)
	assert.False(t, f.IsEmpty())

	empty := DonorFilter{District: " "}
	empty.Normalize()
	assert.True(t, empty.IsEmpty())
}
