package entity

// ChordCategory classifies a chord by its highest extension.
type ChordCategory string

const (
	CategoryTriad    ChordCategory = "Triad"
	CategorySeven    ChordCategory = "Seven"
	CategoryNine     ChordCategory = "Nine"
	CategoryEleven   ChordCategory = "Eleven"
	CategoryThirteen ChordCategory = "Thirteen"
	CategorySix      ChordCategory = "Six"

	// CategoryCrafted marks note combinations the corpus has no record of.
	CategoryCrafted ChordCategory = "Crafted"
)

// ChordCategories are the categories a caller may filter by.
var ChordCategories = []ChordCategory{
	CategoryTriad, CategorySeven, CategoryNine, CategoryEleven, CategoryThirteen, CategorySix,
}

// extensionLadder maps a category to the categories one rung above it.
// Thirteen is present with no successors.
var extensionLadder = map[ChordCategory][]ChordCategory{
	CategoryTriad:    {CategorySeven, CategorySix},
	CategorySeven:    {CategoryNine},
	CategoryNine:     {CategoryEleven},
	CategoryEleven:   {CategoryThirteen},
	CategoryThirteen: {},
}

// NextCategories returns the rung(s) above c. ok is false when c has no
// next rung, either because it is the top of the ladder or because it is
// not on the ladder at all (Six, Crafted).
func NextCategories(c ChordCategory) (next []ChordCategory, ok bool) {
	next = extensionLadder[c]
	if len(next) == 0 {
		return nil, false
	}
	out := make([]ChordCategory, len(next))
	copy(out, next)
	return out, true
}

// ChordRecord is a chord row as stored in the corpus.
type ChordRecord struct {
	Symbol    string        `json:"symbol" yaml:"symbol"`
	Name      string        `json:"name" yaml:"name"`
	Root      PitchClass    `json:"root" yaml:"root"`
	Category  ChordCategory `json:"category" yaml:"category"`
	TriadBase *string       `json:"triad_base,omitempty" yaml:"triad_base,omitempty"`
	Notes     []PitchClass  `json:"notes" yaml:"notes"`
}

func (r *ChordRecord) RootNote() PitchClass   { return r.Root }
func (r *ChordRecord) NoteList() []PitchClass { return r.Notes }
func (r *ChordRecord) DisplayName() string    { return r.Symbol }
func (r *ChordRecord) FullName() string       { return string(r.Root) + " " + r.Name }
func (r *ChordRecord) CategoryOf() string     { return string(r.Category) }
func (r *ChordRecord) TriadBaseOf() *string   { return r.TriadBase }
func (r *ChordRecord) GroupIDOf() int         { return 0 }
func (r *ChordRecord) GroupNameOf() string    { return "" }

// Chord is a reconstructed chord handed back to callers.
type Chord struct {
	Symbol    string        `json:"symbol"`
	Name      string        `json:"name"`
	Root      PitchClass    `json:"root"`
	Category  ChordCategory `json:"category"`
	TriadBase *string       `json:"triad_base"`
	Notes     []Note        `json:"notes"`
}

func (c *Chord) DisplayName() string  { return c.Symbol }
func (c *Chord) RootNote() PitchClass { return c.Root }
func (c *Chord) NoteNames() []string  { return noteLabels(c.Notes) }

// CategoryAndTriadBase annotates an arbitrary note combination.
type CategoryAndTriadBase struct {
	Category  ChordCategory `json:"category"`
	TriadBase *string       `json:"triad_base"`
}
