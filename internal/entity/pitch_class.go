package entity

import (
	"fmt"
	"sort"
	"strings"
)

// PitchClass is one of the 12 canonical, octave-independent note names.
type PitchClass string

const (
	PitchA      PitchClass = "A"
	PitchASharp PitchClass = "A#"
	PitchB      PitchClass = "B"
	PitchC      PitchClass = "C"
	PitchCSharp PitchClass = "C#"
	PitchD      PitchClass = "D"
	PitchDSharp PitchClass = "D#"
	PitchE      PitchClass = "E"
	PitchF      PitchClass = "F"
	PitchFSharp PitchClass = "F#"
	PitchG      PitchClass = "G"
	PitchGSharp PitchClass = "G#"
)

// Alphabet lists the pitch classes in alphabetical order, which is also the
// order the corpus sorts roots in.
var Alphabet = []PitchClass{
	PitchA, PitchASharp, PitchB, PitchC, PitchCSharp, PitchD,
	PitchDSharp, PitchE, PitchF, PitchFSharp, PitchG, PitchGSharp,
}

// semitones from C
var semitoneOffsets = map[PitchClass]int{
	PitchC: 0, PitchCSharp: 1, PitchD: 2, PitchDSharp: 3, PitchE: 4, PitchF: 5,
	PitchFSharp: 6, PitchG: 7, PitchGSharp: 8, PitchA: 9, PitchASharp: 10, PitchB: 11,
}

var flatEquivalents = map[string]PitchClass{
	"AB": PitchGSharp, "BB": PitchASharp, "CB": PitchB, "DB": PitchCSharp,
	"EB": PitchDSharp, "FB": PitchE, "GB": PitchFSharp,
	"B#": PitchC, "E#": PitchF,
}

// IsValid reports whether p is one of the 12 canonical symbols.
func (p PitchClass) IsValid() bool {
	_, ok := semitoneOffsets[p]
	return ok
}

// Semitone returns the distance above C (0-11), or -1 for an invalid value.
func (p PitchClass) Semitone() int {
	if s, ok := semitoneOffsets[p]; ok {
		return s
	}
	return -1
}

// Transpose moves p by n semitones, wrapping around the octave.
func (p PitchClass) Transpose(n int) PitchClass {
	return PitchClassFromSemitone(p.Semitone() + n)
}

func (p PitchClass) String() string {
	return string(p)
}

// PitchClassFromSemitone maps any integer onto the 12-tone circle (0 = C).
func PitchClassFromSemitone(semitone int) PitchClass {
	semitone = ((semitone % 12) + 12) % 12
	for pc, s := range semitoneOffsets {
		if s == semitone {
			return pc
		}
	}
	return ""
}

// ParsePitchClass canonicalizes user input such as "c#", " Db " or "bb" to
// one of the 12 symbols.
func ParsePitchClass(raw string) (PitchClass, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if pc := PitchClass(s); pc.IsValid() {
		return pc, nil
	}
	if pc, ok := flatEquivalents[s]; ok {
		return pc, nil
	}
	return "", fmt.Errorf("invalid pitch class %q", raw)
}

// PitchClassNames projects a list of pitch classes to plain strings.
func PitchClassNames(pcs []PitchClass) []string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = string(pc)
	}
	return names
}

// DistinctPitchClasses drops repeated entries, keeping first occurrences.
func DistinctPitchClasses(pcs []PitchClass) []PitchClass {
	seen := make(map[PitchClass]struct{}, len(pcs))
	out := make([]PitchClass, 0, len(pcs))
	for _, pc := range pcs {
		if _, ok := seen[pc]; ok {
			continue
		}
		seen[pc] = struct{}{}
		out = append(out, pc)
	}
	return out
}

// RotateFromRoot orders notes alphabetically starting at root, wrapping
// around: for root D, [A C D F] becomes [D F A C].
func RotateFromRoot(notes []PitchClass, root PitchClass) []PitchClass {
	out := make([]PitchClass, 0, len(notes))
	var upper, lower []PitchClass
	for _, n := range notes {
		if n >= root {
			upper = append(upper, n)
		} else {
			lower = append(lower, n)
		}
	}
	sortPitchClasses(upper)
	sortPitchClasses(lower)
	out = append(out, upper...)
	return append(out, lower...)
}

func sortPitchClasses(pcs []PitchClass) {
	sort.Slice(pcs, func(i, j int) bool { return pcs[i] < pcs[j] })
}
