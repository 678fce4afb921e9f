package service

import (
	"fmt"
	"strconv"
	"strings"

	"soundkey-be/internal/entity"
)

// Modes are the scale group names GetScalesByMode accepts.
var Modes = []string{
	"diatonic",
	"melodic minor",
	"neapolitan major",
	"neapolitan minor",
	"harmonic minor",
	"harmonic major",
	"double harmonic",
	"hungarian major",
	"harmonic lydian",
}

// ScaleTypes maps a scale type to the note count it stands for.
var ScaleTypes = map[string]int{
	"Pentatonic":  5,
	"Hexatonic":   6,
	"Heptatonic":  7,
	"Octatonic":   8,
	"Dodecatonic": 12,
}

// ValidateNoteSet succeeds when every note is one of the 12 canonical
// symbols. No notes at all is fine.
func ValidateNoteSet(notes ...string) error {
	for _, n := range notes {
		if !entity.PitchClass(n).IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidNote, n)
		}
	}
	return nil
}

// ValidateCategory accepts an empty category or one a caller may filter by.
// Crafted is output only.
func ValidateCategory(category string) error {
	if category == "" {
		return nil
	}
	for _, c := range entity.ChordCategories {
		if string(c) == category {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
}

func ValidateMode(mode string) error {
	if mode == "" {
		return nil
	}
	for _, m := range Modes {
		if m == mode {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}

func ValidateGroupID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGroupID, raw)
	}
	return id, nil
}

func ValidateScaleType(scaleType string) (int, error) {
	count, ok := ScaleTypes[scaleType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScaleType, scaleType)
	}
	return count, nil
}

// NormalizeLookupInput projects src to its ordered pitch classes. A nil src
// yields nil.
func NormalizeLookupInput(src entity.NoteSource) ([]entity.PitchClass, error) {
	if src == nil {
		return nil, nil
	}
	names := src.NoteNames()
	if err := ValidateNoteSet(names...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotesInput, err)
	}
	notes := make([]entity.PitchClass, len(names))
	for i, n := range names {
		notes[i] = entity.PitchClass(n)
	}
	return notes, nil
}

func parseRoot(raw string) (entity.PitchClass, error) {
	if err := ValidateNoteSet(raw); err != nil {
		return "", err
	}
	return entity.PitchClass(raw), nil
}
