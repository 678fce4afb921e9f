package notation

import (
	"fmt"
	"sort"
	"strings"

	"soundkey-be/internal/entity"
)

// Parser turns chord symbols such as "Cmaj7", "F#m7b5" or "Bb7(#9)" into
// spelled chords, and raw scale rows into spelled scales.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// modifiers are matched longest first at the head of the remaining suffix.
var modifiers = []struct {
	token string
	apply func(t tones)
}{
	{"add13", func(t tones) { t["13"] = 21 }},
	{"add11", func(t tones) { t["11"] = 17 }},
	{"add9", func(t tones) { t["9"] = 14 }},
	{"sus2", func(t tones) { delete(t, "3"); t["2"] = 2 }},
	{"sus4", func(t tones) { delete(t, "3"); t["4"] = 5 }},
	{"sus", func(t tones) { delete(t, "3"); t["4"] = 5 }},
	{"b13", func(t tones) { t["13"] = 20 }},
	{"#11", func(t tones) { t["11"] = 18 }},
	{"b9", func(t tones) { t["9"] = 13 }},
	{"#9", func(t tones) { t["9"] = 15 }},
	{"b5", func(t tones) { t["5"] = 6 }},
	{"#5", func(t tones) { t["5"] = 8 }},
}

// tones maps a degree name to its interval above the root
type tones map[string]int

// ChordFromSymbol parses symbol. The category is taken from the highest
// stacked degree; added and altered tones do not raise it, so "C7#9" is a
// Seven here.
func (p *Parser) ChordFromSymbol(symbol string) (*Chord, error) {
	symbol = strings.TrimSpace(symbol)
	root, rest, err := splitRoot(symbol)
	if err != nil {
		return nil, err
	}

	rest = strings.NewReplacer("(", "", ")", "", ",", "", " ", "").Replace(rest)
	t := tones{"R": 0, "3": 4, "5": 7}
	category := entity.CategoryTriad

	majorSeventh := false
	if strings.HasPrefix(rest, "maj") {
		majorSeventh = true
		rest = rest[3:]
	} else {
		rest = parseQuality(rest, t)
		if strings.HasPrefix(rest, "maj") {
			majorSeventh = true
			rest = rest[3:]
		}
	}

	degree, rest := parseDegree(rest)
	switch degree {
	case 0:
		if majorSeventh && rest != "" {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedSuffix, symbol)
		}
	case 6:
		t["6"] = 9
		category = entity.CategorySix
	default:
		switch {
		case majorSeventh:
			t["7"] = 11
		case t["3"] == 3 && t["5"] == 6:
			// diminished seventh
			t["7"] = 9
		default:
			t["7"] = 10
		}
		category = entity.CategorySeven
		if degree >= 9 {
			t["9"] = 14
			category = entity.CategoryNine
		}
		if degree >= 11 {
			t["11"] = 17
			category = entity.CategoryEleven
		}
		if degree == 13 {
			t["13"] = 21
			category = entity.CategoryThirteen
		}
	}

	for rest != "" {
		matched := false
		for _, m := range modifiers {
			if strings.HasPrefix(rest, m.token) {
				m.apply(t)
				rest = rest[len(m.token):]
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedSuffix, symbol)
		}
	}

	chord := &Chord{
		Symbol:   symbol,
		Root:     root,
		Category: category,
		Notes:    spell(root, t),
	}
	if category != entity.CategoryTriad {
		if marker, ok := triadMarker(t); ok {
			base := string(root) + marker
			chord.TriadBase = &base
		}
	}
	return chord, nil
}

// splitRoot reads the root from the head of symbol. A '#' or 'b' directly
// after the letter always belongs to the root.
func splitRoot(symbol string) (entity.PitchClass, string, error) {
	if symbol == "" {
		return "", "", fmt.Errorf("%w: empty chord symbol", ErrInvalidRoot)
	}
	n := 1
	if len(symbol) > 1 && (symbol[1] == '#' || symbol[1] == 'b') {
		n = 2
	}
	letter := symbol[0]
	if letter < 'A' || letter > 'G' {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRoot, symbol)
	}
	root, err := entity.ParsePitchClass(symbol[:n])
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRoot, symbol)
	}
	return root, symbol[n:], nil
}

func parseQuality(rest string, t tones) string {
	switch {
	case strings.HasPrefix(rest, "min"):
		t["3"] = 3
		return rest[3:]
	case strings.HasPrefix(rest, "dim"):
		t["3"], t["5"] = 3, 6
		return rest[3:]
	case strings.HasPrefix(rest, "aug"):
		t["5"] = 8
		return rest[3:]
	case strings.HasPrefix(rest, "m"), strings.HasPrefix(rest, "-"):
		t["3"] = 3
		return rest[1:]
	case strings.HasPrefix(rest, "+"):
		t["5"] = 8
		return rest[1:]
	}
	return rest
}

func parseDegree(rest string) (int, string) {
	for _, d := range []struct {
		token  string
		degree int
	}{{"13", 13}, {"11", 11}, {"9", 9}, {"7", 7}, {"6", 6}} {
		if strings.HasPrefix(rest, d.token) {
			return d.degree, rest[len(d.token):]
		}
	}
	return 0, rest
}

// triadMarker names the triad under the stacked tones, e.g. "m" or "dim".
func triadMarker(t tones) (string, bool) {
	third, hasThird := t["3"]
	fifth := t["5"]
	switch {
	case hasThird && third == 4 && fifth == 7:
		return "", true
	case hasThird && third == 3 && fifth == 7:
		return "m", true
	case hasThird && third == 3 && fifth == 6:
		return "dim", true
	case hasThird && third == 4 && fifth == 8:
		return "aug", true
	case t["2"] == 2 && fifth == 7:
		return "sus2", true
	case t["4"] == 5 && fifth == 7:
		return "sus4", true
	}
	return "", false
}

// spell orders tones by interval and drops repeated pitch classes.
func spell(root entity.PitchClass, t tones) []Note {
	notes := make([]Note, 0, len(t))
	for degree, interval := range t {
		pitch := root.Transpose(interval)
		notes = append(notes, Note{
			Name:     string(pitch),
			Degree:   degreeLabel(degree, interval),
			Pitch:    pitch,
			Interval: interval,
		})
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Interval < notes[j].Interval })

	seen := make(map[entity.PitchClass]bool, len(notes))
	out := notes[:0]
	for _, n := range notes {
		if seen[n.Pitch] {
			continue
		}
		seen[n.Pitch] = true
		out = append(out, n)
	}
	return out
}

var naturalIntervals = map[string]int{
	"2": 2, "3": 4, "4": 5, "5": 7, "6": 9, "7": 11, "9": 14, "11": 17, "13": 21,
}

func degreeLabel(degree string, interval int) string {
	natural, ok := naturalIntervals[degree]
	if !ok {
		return degree
	}
	switch {
	case interval == natural-2 && degree == "7":
		return "bb7"
	case interval < natural:
		return "b" + degree
	case interval > natural:
		return "#" + degree
	}
	return degree
}
