package notation

import (
	"fmt"

	"soundkey-be/internal/entity"
)

var scaleDegrees = [12]string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// ScaleFromSimple spells a scale from its stored root, name and note list.
// Notes keep the given order; the root must be one of them.
func (p *Parser) ScaleFromSimple(root, name string, notes []string) (*Scale, error) {
	rootPitch, err := entity.ParsePitchClass(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, root)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: %s %s has no notes", ErrInvalidScale, root, name)
	}

	scale := &Scale{
		Name:  name,
		Root:  rootPitch,
		Notes: make([]Note, 0, len(notes)),
	}
	found := false
	for _, raw := range notes {
		pitch, err := entity.ParsePitchClass(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrInvalidScale, root, name, err)
		}
		interval := (pitch.Semitone() - rootPitch.Semitone() + 12) % 12
		n := Note{
			Name:     string(pitch),
			Degree:   scaleDegrees[interval],
			Pitch:    pitch,
			Interval: interval,
		}
		if pitch == rootPitch && !found {
			scale.RootNote = n
			found = true
		}
		scale.Notes = append(scale.Notes, n)
	}
	if !found {
		return nil, fmt.Errorf("%w: root %s is not a note of %s", ErrInvalidScale, root, name)
	}
	return scale, nil
}
