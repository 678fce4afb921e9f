package service

import (
	"errors"
	"testing"

	"soundkey-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNoteSet(t *testing.T) {
	tests := []struct {
		name    string
		notes   []string
		wantErr string
	}{
		{"nothing", nil, ""},
		{"single note", []string{"C#"}, ""},
		{"full alphabet", entity.PitchClassNames(entity.Alphabet), ""},
		{"flat spelling", []string{"C", "Db"}, `"Db"`},
		{"lower case", []string{"c"}, `"c"`},
		{"first bad token is named", []string{"C", "X", "Y"}, `"X"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNoteSet(tt.notes...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidNote)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCategoryAndMode(t *testing.T) {
	assert.NoError(t, ValidateCategory(""))
	assert.NoError(t, ValidateCategory("Eleven"))
	assert.ErrorIs(t, ValidateCategory("Crafted"), ErrInvalidCategory)
	assert.ErrorIs(t, ValidateCategory("seven"), ErrInvalidCategory)

	assert.NoError(t, ValidateMode(""))
	for _, m := range Modes {
		assert.NoError(t, ValidateMode(m))
	}
	assert.ErrorIs(t, ValidateMode("lydian"), ErrInvalidMode)
}

func TestValidateGroupID(t *testing.T) {
	id, err := ValidateGroupID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, raw := range []string{"", "1.5", "abc"} {
		_, err := ValidateGroupID(raw)
		assert.ErrorIs(t, err, ErrInvalidGroupID, raw)
	}
}

func TestNormalizeLookupInput(t *testing.T) {
	got, err := NormalizeLookupInput(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = NormalizeLookupInput(entity.RawNotes{"G", "C", "E"})
	require.NoError(t, err)
	assert.Equal(t, []entity.PitchClass{"G", "C", "E"}, got)

	chord := &entity.Chord{Symbol: "Am", Root: entity.PitchA, Notes: []entity.Note{
		{Label: "A", Pitch: "A"}, {Label: "C", Pitch: "C"}, {Label: "E", Pitch: "E"},
	}}
	got, err = NormalizeLookupInput(chord)
	require.NoError(t, err)
	assert.Equal(t, []entity.PitchClass{"A", "C", "E"}, got)

	_, err = NormalizeLookupInput(entity.RawNotes{"A", "Z"})
	assert.ErrorIs(t, err, ErrInvalidNotesInput)
	assert.ErrorIs(t, err, ErrInvalidNote)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ValidateCategory("x")))
	assert.True(t, IsValidationError(ValidateNoteSet("x")))
	assert.False(t, IsValidationError(ErrStorageUnavailable))
	assert.False(t, IsValidationError(errors.New("boom")))
}
