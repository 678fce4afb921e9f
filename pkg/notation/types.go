package notation

import (
	"errors"

	"soundkey-be/internal/entity"
)

var (
	ErrInvalidRoot       = errors.New("invalid root note")
	ErrUnsupportedSuffix = errors.New("unsupported chord suffix")
	ErrInvalidScale      = errors.New("invalid scale")
)

// Notation spells chords and scales. *Parser is the stock implementation.
type Notation interface {
	ChordFromSymbol(symbol string) (*Chord, error)
	ScaleFromSimple(root, name string, notes []string) (*Scale, error)
}

// Note is a spelled pitch. Name is the display name of the pitch, Degree
// its function relative to the root ("R", "b3", "#9").
type Note struct {
	Name     string
	Degree   string
	Pitch    entity.PitchClass
	Interval int
}

// Chord is the result of parsing a chord symbol. Category and TriadBase are
// inferred from the symbol alone.
type Chord struct {
	Symbol    string
	Root      entity.PitchClass
	Category  entity.ChordCategory
	TriadBase *string
	Notes     []Note
}

type Scale struct {
	Name     string
	Root     entity.PitchClass
	RootNote Note
	Notes    []Note
}

// Pitches returns the chord's pitch classes in interval order.
func (c *Chord) Pitches() []entity.PitchClass {
	return pitches(c.Notes)
}

func (s *Scale) Pitches() []entity.PitchClass {
	return pitches(s.Notes)
}

func pitches(notes []Note) []entity.PitchClass {
	out := make([]entity.PitchClass, len(notes))
	for i, n := range notes {
		out[i] = n.Pitch
	}
	return out
}
