package corpus

import "soundkey-be/internal/entity"

type chordTemplate struct {
	Suffix   string
	Name     string
	Category entity.ChordCategory
	// Triad is the suffix of the underlying triad. Triads leave it empty
	// and carry no triad base.
	Triad *string
}

func triad(suffix string) *string { return &suffix }

var chordTemplates = []chordTemplate{
	{"", "Major", entity.CategoryTriad, nil},
	{"m", "Minor", entity.CategoryTriad, nil},
	{"dim", "Diminished", entity.CategoryTriad, nil},
	{"aug", "Augmented", entity.CategoryTriad, nil},
	{"sus2", "Suspended Second", entity.CategoryTriad, nil},
	{"sus4", "Suspended Fourth", entity.CategoryTriad, nil},

	{"6", "Major Sixth", entity.CategorySix, triad("")},
	{"m6", "Minor Sixth", entity.CategorySix, triad("m")},

	{"7", "Dominant Seventh", entity.CategorySeven, triad("")},
	{"maj7", "Major Seventh", entity.CategorySeven, triad("")},
	{"m7", "Minor Seventh", entity.CategorySeven, triad("m")},
	{"mmaj7", "Minor Major Seventh", entity.CategorySeven, triad("m")},
	{"m7b5", "Half Diminished Seventh", entity.CategorySeven, triad("dim")},
	{"dim7", "Diminished Seventh", entity.CategorySeven, triad("dim")},
	{"7#5", "Augmented Seventh", entity.CategorySeven, triad("aug")},
	{"maj7#5", "Augmented Major Seventh", entity.CategorySeven, triad("aug")},
	{"7sus4", "Dominant Seventh Suspended Fourth", entity.CategorySeven, triad("sus4")},

	{"9", "Dominant Ninth", entity.CategoryNine, triad("")},
	{"maj9", "Major Ninth", entity.CategoryNine, triad("")},
	{"m9", "Minor Ninth", entity.CategoryNine, triad("m")},
	{"7b9", "Dominant Minor Ninth", entity.CategoryNine, triad("")},
	{"7#9", "Dominant Sharp Ninth", entity.CategoryNine, triad("")},

	{"11", "Dominant Eleventh", entity.CategoryEleven, triad("")},
	{"m11", "Minor Eleventh", entity.CategoryEleven, triad("m")},
	{"maj7#11", "Major Seventh Sharp Eleventh", entity.CategoryEleven, triad("")},

	{"13", "Dominant Thirteenth", entity.CategoryThirteen, triad("")},
	{"maj13", "Major Thirteenth", entity.CategoryThirteen, triad("")},
	{"m13", "Minor Thirteenth", entity.CategoryThirteen, triad("m")},
}

// Scale group ids. Mode groups use the names the mode filter accepts.
const (
	GroupDiatonic = iota + 1
	GroupMelodicMinor
	GroupHarmonicMinor
	GroupHarmonicMajor
	GroupNeapolitanMajor
	GroupNeapolitanMinor
	GroupDoubleHarmonic
	GroupHungarianMajor
	GroupHarmonicLydian
	GroupPentatonic
	GroupHexatonic
	GroupOctatonic
	GroupChromatic
)

var scaleGroups = []*entity.ScaleGroup{
	{Id: GroupDiatonic, Name: "diatonic"},
	{Id: GroupMelodicMinor, Name: "melodic minor"},
	{Id: GroupHarmonicMinor, Name: "harmonic minor"},
	{Id: GroupHarmonicMajor, Name: "harmonic major"},
	{Id: GroupNeapolitanMajor, Name: "neapolitan major"},
	{Id: GroupNeapolitanMinor, Name: "neapolitan minor"},
	{Id: GroupDoubleHarmonic, Name: "double harmonic"},
	{Id: GroupHungarianMajor, Name: "hungarian major"},
	{Id: GroupHarmonicLydian, Name: "harmonic lydian"},
	{Id: GroupPentatonic, Name: "pentatonic"},
	{Id: GroupHexatonic, Name: "hexatonic"},
	{Id: GroupOctatonic, Name: "octatonic"},
	{Id: GroupChromatic, Name: "chromatic"},
}

type scaleTemplate struct {
	Name      string
	GroupId   int
	Intervals []int
}

// modesOf names every rotation of a seven note parent scale.
func modesOf(group int, parent []int, names ...string) []scaleTemplate {
	out := make([]scaleTemplate, len(names))
	for i, name := range names {
		intervals := make([]int, len(parent))
		for j := range parent {
			intervals[j] = (parent[(i+j)%len(parent)] - parent[i] + 12) % 12
		}
		out[i] = scaleTemplate{Name: name, GroupId: group, Intervals: intervals}
	}
	return out
}

func scaleTemplates() []scaleTemplate {
	var out []scaleTemplate
	out = append(out, modesOf(GroupDiatonic, []int{0, 2, 4, 5, 7, 9, 11},
		"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian")...)
	out = append(out, modesOf(GroupMelodicMinor, []int{0, 2, 3, 5, 7, 9, 11},
		"Melodic Minor", "Dorian b2", "Lydian Augmented", "Lydian Dominant",
		"Mixolydian b6", "Locrian #2", "Altered")...)
	out = append(out, modesOf(GroupHarmonicMinor, []int{0, 2, 3, 5, 7, 8, 11},
		"Harmonic Minor", "Locrian #6", "Ionian #5", "Dorian #4",
		"Phrygian Dominant", "Lydian #2", "Super Locrian bb7")...)
	out = append(out, scaleTemplate{"Harmonic Major", GroupHarmonicMajor, []int{0, 2, 4, 5, 7, 8, 11}})
	out = append(out, scaleTemplate{"Neapolitan Major", GroupNeapolitanMajor, []int{0, 1, 3, 5, 7, 9, 11}})
	out = append(out, scaleTemplate{"Neapolitan Minor", GroupNeapolitanMinor, []int{0, 1, 3, 5, 7, 8, 11}})
	out = append(out, scaleTemplate{"Double Harmonic", GroupDoubleHarmonic, []int{0, 1, 4, 5, 7, 8, 11}})
	out = append(out, scaleTemplate{"Hungarian Major", GroupHungarianMajor, []int{0, 3, 4, 6, 7, 9, 10}})
	out = append(out, scaleTemplate{"Harmonic Lydian", GroupHarmonicLydian, []int{0, 2, 4, 6, 7, 8, 11}})
	out = append(out,
		scaleTemplate{"Major Pentatonic", GroupPentatonic, []int{0, 2, 4, 7, 9}},
		scaleTemplate{"Minor Pentatonic", GroupPentatonic, []int{0, 3, 5, 7, 10}},
		scaleTemplate{"Major Hexatonic", GroupHexatonic, []int{0, 2, 4, 5, 7, 9}},
		scaleTemplate{"Minor Hexatonic", GroupHexatonic, []int{0, 2, 3, 5, 7, 10}},
		scaleTemplate{"Whole Tone", GroupHexatonic, []int{0, 2, 4, 6, 8, 10}},
		scaleTemplate{"Blues", GroupHexatonic, []int{0, 3, 5, 6, 7, 10}},
		scaleTemplate{"Diminished Half Whole", GroupOctatonic, []int{0, 1, 3, 4, 6, 7, 9, 10}},
		scaleTemplate{"Diminished Whole Half", GroupOctatonic, []int{0, 2, 3, 5, 6, 8, 9, 11}},
		scaleTemplate{"Chromatic", GroupChromatic, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	)
	return out
}
