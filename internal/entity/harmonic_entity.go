package entity

// Note is one pitch of a reconstructed chord or scale.
type Note struct {
	Label    string     `json:"label"`
	Degree   string     `json:"degree"`
	Pitch    PitchClass `json:"pitch"`
	Semitone int        `json:"semitone"`
	Interval int        `json:"interval"`
}

func noteLabels(notes []Note) []string {
	labels := make([]string, len(notes))
	for i, n := range notes {
		labels[i] = string(n.Pitch)
	}
	return labels
}

// HarmonicObject is either a *Chord or a *Scale.
type HarmonicObject interface {
	NoteSource
	DisplayName() string
	RootNote() PitchClass
}

// NoteSource is anything that can be projected to an ordered list of note
// names: a HarmonicObject or RawNotes.
type NoteSource interface {
	NoteNames() []string
}

// RawNotes is a caller supplied note list, not yet validated.
type RawNotes []string

func (r RawNotes) NoteNames() []string { return r }

// CorpusRecord is the shape every stored chord or scale row exposes to
// query predicates.
type CorpusRecord interface {
	RootNote() PitchClass
	NoteList() []PitchClass
	DisplayName() string
	FullName() string
	CategoryOf() string
	TriadBaseOf() *string
	GroupIDOf() int
	GroupNameOf() string
}
