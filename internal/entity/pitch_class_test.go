package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchClass(t *testing.T) {
	tests := []struct {
		raw     string
		want    PitchClass
		wantErr bool
	}{
		{raw: "C", want: PitchC},
		{raw: " c# ", want: PitchCSharp},
		{raw: "Db", want: PitchCSharp},
		{raw: "bb", want: PitchASharp},
		{raw: "E#", want: PitchF},
		{raw: "Cb", want: PitchB},
		{raw: "H", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "C##", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePitchClass(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPitchClass_Transpose(t *testing.T) {
	assert.Equal(t, PitchE, PitchC.Transpose(4))
	assert.Equal(t, PitchA, PitchC.Transpose(-3))
	assert.Equal(t, PitchC, PitchB.Transpose(13))
	assert.Equal(t, -1, PitchClass("X").Semitone())
}

func TestRotateFromRoot(t *testing.T) {
	got := RotateFromRoot([]PitchClass{"A", "C", "D", "F"}, PitchD)
	assert.Equal(t, []PitchClass{"D", "F", "A", "C"}, got)

	got = RotateFromRoot([]PitchClass{"G", "C", "E"}, PitchC)
	assert.Equal(t, []PitchClass{"C", "E", "G"}, got)
}

func TestDistinctPitchClasses(t *testing.T) {
	got := DistinctPitchClasses([]PitchClass{"C", "E", "C", "G", "E"})
	assert.Equal(t, []PitchClass{"C", "E", "G"}, got)
}

func TestNextCategories(t *testing.T) {
	tests := []struct {
		category ChordCategory
		want     []ChordCategory
		ok       bool
	}{
		{CategoryTriad, []ChordCategory{CategorySeven, CategorySix}, true},
		{CategorySeven, []ChordCategory{CategoryNine}, true},
		{CategoryNine, []ChordCategory{CategoryEleven}, true},
		{CategoryEleven, []ChordCategory{CategoryThirteen}, true},
		{CategoryThirteen, nil, false},
		{CategorySix, nil, false},
		{CategoryCrafted, nil, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got, ok := NextCategories(tt.category)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextCategories_ReturnsCopy(t *testing.T) {
	next, _ := NextCategories(CategoryTriad)
	next[0] = CategoryCrafted

	again, _ := NextCategories(CategoryTriad)
	assert.Equal(t, CategorySeven, again[0])
}
