package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pupper-backend/pkg/errors"
)

func TestValidateSpecies(t *testing.T) {
	v := NewDogValidator()

	t.Run("accepts labrador variants", func(t *testing.T) {
		for _, species := range []string{
			"Labrador Retriever",
			"labrador retriever",
			"  Labrador  ",
			"lab",
			"American Labrador Mix",
		} {
			assert.NoErrorf(t, v.ValidateSpecies(species), "species %q", species)
		}
	})

	t.Run("rejects other breeds", func(t *testing.T) {
		for _, species := range []string{
			"Golden Retriever",
			"Poodle",
			"Retriever",
			"",
		} {
			err := v.ValidateSpecies(species)
			require.Errorf(t, err, "species %q", species)
			assert.True(t, errors.IsValidation(err))
			assert.Contains(t, err.Error(), "Only Labrador Retrievers are allowed")
		}
	})
}

func TestValidateWeight(t *testing.T) {
	v := NewDogValidator()

	assert.NoError(t, v.ValidateWeight(0.1))
	assert.NoError(t, v.ValidateWeight(65))

	err := v.ValidateWeight(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive number")

	assert.Error(t, v.ValidateWeight(-10))
}

func TestValidateDate(t *testing.T) {
	v := NewDogValidator()

	assert.NoError(t, v.ValidateDate("dog_birthday", "01/15/2021"))
	assert.NoError(t, v.ValidateDate("dog_birthday", "1/5/2021"))

	err := v.ValidateDate("shelter_entry_date", "2021-01-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shelter_entry_date must be in MM/DD/YYYY format")

	assert.Error(t, v.ValidateDate("dog_birthday", "13/45/2021"))
	assert.Error(t, v.ValidateDate("dog_birthday", ""))
}

func TestValidateStatus(t *testing.T) {
	v := NewDogValidator()

	assert.NoError(t, v.ValidateStatus("available"))
	assert.NoError(t, v.ValidateStatus("Adopted"))
	assert.NoError(t, v.ValidateStatus("pending"))

	assert.Error(t, v.ValidateStatus("lost"))
	assert.Error(t, v.ValidateStatus(""))
}
