package service

import (
	"fmt"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/specification"
	"soundkey-be/pkg/notation"
)

// baseSet validates the base of a relationship query and returns its
// distinct notes in their original order.
func baseSet(base entity.NoteSource) ([]entity.PitchClass, error) {
	notes, err := NormalizeLookupInput(base)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: empty note set", ErrInvalidNotesInput)
	}
	return entity.DistinctPitchClasses(notes), nil
}

// limiterSpecs turns an optional limiter into the capped overlap rule.
func limiterSpecs(limiter entity.NoteSource) ([]specification.Specification, error) {
	notes, err := NormalizeLookupInput(limiter)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return []specification.Specification{
		specification.LimitedBy{Notes: entity.DistinctPitchClasses(notes)},
	}, nil
}

// resolveRoot validates raw when given. Otherwise the root of a harmonic
// base is used, then the first base note.
func resolveRoot(raw string, base entity.NoteSource, notes []entity.PitchClass) (entity.PitchClass, error) {
	if raw != "" {
		return parseRoot(raw)
	}
	if obj, ok := base.(entity.HarmonicObject); ok {
		return obj.RootNote(), nil
	}
	return notes[0], nil
}

func pivot(pc entity.PitchClass) specification.PivotOrder {
	return specification.PivotOrder{Pivot: &pc}
}

func storageError(log logger.ILogger, module, operation string, err error) error {
	log.Error(module, "Corpus query failed", map[string]interface{}{
		"operation": operation,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func relabel(notes []notation.Note) []entity.Note {
	out := make([]entity.Note, len(notes))
	for i, n := range notes {
		out[i] = relabelNote(n)
	}
	return out
}

func relabelNote(n notation.Note) entity.Note {
	return entity.Note{
		Label:    n.Name,
		Degree:   n.Degree,
		Pitch:    n.Pitch,
		Semitone: n.Pitch.Semitone(),
		Interval: n.Interval,
	}
}

func sameNoteSet(a, b []entity.PitchClass) bool {
	da, db := entity.DistinctPitchClasses(a), entity.DistinctPitchClasses(b)
	if len(da) != len(db) {
		return false
	}
	set := make(map[entity.PitchClass]bool, len(da))
	for _, n := range da {
		set[n] = true
	}
	for _, n := range db {
		if !set[n] {
			return false
		}
	}
	return true
}

// chordFromRecord spells a stored chord. Category and triad base come from
// the corpus, which knows better than the parser.
func chordFromRecord(parser notation.Notation, rec *entity.ChordRecord) (*entity.Chord, error) {
	parsed, err := parser.ChordFromSymbol(rec.Symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReconstructionFailure, rec.Symbol, err)
	}
	if !sameNoteSet(parsed.Pitches(), rec.Notes) {
		return nil, fmt.Errorf("%w: %s spells %v, corpus holds %v",
			ErrReconstructionFailure, rec.Symbol, parsed.Pitches(), rec.Notes)
	}
	return &entity.Chord{
		Symbol:    parsed.Symbol,
		Name:      rec.Name,
		Root:      parsed.Root,
		Category:  rec.Category,
		TriadBase: rec.TriadBase,
		Notes:     relabel(parsed.Notes),
	}, nil
}

func scaleFromRecord(parser notation.Notation, rec *entity.ScaleRecord) (*entity.Scale, error) {
	parsed, err := parser.ScaleFromSimple(string(rec.Root), rec.Name, entity.PitchClassNames(rec.Notes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrReconstructionFailure, rec.Root, rec.Name, err)
	}
	return &entity.Scale{
		Name:      parsed.Name,
		Root:      parsed.Root,
		RootPitch: relabelNote(parsed.RootNote),
		GroupId:   rec.GroupId,
		GroupName: rec.GroupName,
		Notes:     relabel(parsed.Notes),
	}, nil
}
