package specification

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"soundkey-be/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Harmony specifications run against the grouped corpus query built by the
// chord and scale repositories. That query aliases the object table as h,
// the note table as hn, the scale group table as g and exposes the display
// key as the output column label.

// ByRoot filters by root note
type ByRoot struct {
	Root entity.PitchClass
}

func (s ByRoot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("h.root_note = ?", string(s.Root))
}

func (s ByRoot) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return r.RootNote() == s.Root
}

// RootNot excludes a root note
type RootNot struct {
	Root entity.PitchClass
}

func (s RootNot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("h.root_note <> ?", string(s.Root))
}

func (s RootNot) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return r.RootNote() != s.Root
}

// RootIn keeps records whose root is one of Notes
type RootIn struct {
	Notes []entity.PitchClass
}

func (s RootIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("h.root_note IN ?", entity.PitchClassNames(s.Notes))
}

func (s RootIn) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return contains(s.Notes, r.RootNote())
}

// ByCategories filters chords by any of the given categories. An empty list
// matches nothing.
type ByCategories struct {
	Categories []entity.ChordCategory
}

func (s ByCategories) Apply(db *gorm.DB) *gorm.DB {
	names := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		names[i] = string(c)
	}
	return db.Where("h.category IN ?", names)
}

func (s ByCategories) IsSatisfiedBy(r entity.CorpusRecord) bool {
	for _, c := range s.Categories {
		if string(c) == r.CategoryOf() {
			return true
		}
	}
	return false
}

type ByTriadBase struct {
	TriadBase string
}

func (s ByTriadBase) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("h.triad_base = ?", s.TriadBase)
}

func (s ByTriadBase) IsSatisfiedBy(r entity.CorpusRecord) bool {
	tb := r.TriadBaseOf()
	return tb != nil && *tb == s.TriadBase
}

type ByGroupID struct {
	GroupID int
}

func (s ByGroupID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("h.group_id = ?", s.GroupID)
}

func (s ByGroupID) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return r.GroupIDOf() == s.GroupID
}

type ByGroupName struct {
	Name string
}

func (s ByGroupName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("g.name = ?", s.Name)
}

func (s ByGroupName) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return r.GroupNameOf() == s.Name
}

// NoteCountEquals requires the candidate to hold exactly Count notes
type NoteCountEquals struct {
	Count int
}

func (s NoteCountEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Having("COUNT(hn.note) = ?", s.Count)
}

func (s NoteCountEquals) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return len(r.NoteList()) == s.Count
}

// OverlapEquals requires exactly Count of the candidate's notes to be in Notes
type OverlapEquals struct {
	Notes []entity.PitchClass
	Count int
}

func (s OverlapEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Having("COUNT(CASE WHEN hn.note IN ? THEN 1 END) = ?", entity.PitchClassNames(s.Notes), s.Count)
}

func (s OverlapEquals) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return overlap(r.NoteList(), s.Notes) == s.Count
}

// OverlapAtLeast requires at least Count of the candidate's notes to be in Notes
type OverlapAtLeast struct {
	Notes []entity.PitchClass
	Count int
}

func (s OverlapAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Having("COUNT(CASE WHEN hn.note IN ? THEN 1 END) >= ?", entity.PitchClassNames(s.Notes), s.Count)
}

func (s OverlapAtLeast) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return overlap(r.NoteList(), s.Notes) >= s.Count
}

// LimitedBy keeps candidates compatible with a companion note set: the
// number of candidate notes found in Notes must equal
// min(distinct candidate notes, len(Notes)). A limiter smaller than the
// candidate must be covered completely; a larger one must cover the
// candidate completely. Notes must already be distinct.
type LimitedBy struct {
	Notes []entity.PitchClass
}

func (s LimitedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Having(
		"COUNT(CASE WHEN hn.note IN ? THEN 1 END) = LEAST(COUNT(DISTINCT hn.note), ?)",
		entity.PitchClassNames(s.Notes), len(s.Notes),
	)
}

func (s LimitedBy) IsSatisfiedBy(r entity.CorpusRecord) bool {
	distinct := entity.DistinctPitchClasses(r.NoteList())
	return overlap(distinct, s.Notes) == min(len(distinct), len(s.Notes))
}

// NameHasWordPrefix matches records whose "<root> <name>" contains a word
// starting with Token, case-insensitively. "lyd" matches "C Lydian".
type NameHasWordPrefix struct {
	Token string
}

func (s NameHasWordPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`(h.root_note || ' ' || h.name) ~* ?`, `\m`+regexp.QuoteMeta(s.Token))
}

func (s NameHasWordPrefix) IsSatisfiedBy(r entity.CorpusRecord) bool {
	return hasWordPrefix(r.FullName(), s.Token)
}

// PivotOrder sorts roots alphabetically starting at Pivot, wrapping around,
// then by label. A nil Pivot sorts roots in plain alphabetical order.
type PivotOrder struct {
	Pivot *entity.PitchClass
}

// Apply emits a single ORDER BY expression; gorm drops an expression
// clause once plain columns are merged into it.
func (s PivotOrder) Apply(db *gorm.DB) *gorm.DB {
	if s.Pivot == nil {
		return db.Order(`h.root_note COLLATE "C" ASC`).Order("label ASC")
	}
	return db.Order(clause.OrderBy{Expression: clause.Expr{
		SQL:                `CASE WHEN h.root_note COLLATE "C" >= ? THEN 1 ELSE 2 END, h.root_note COLLATE "C" ASC, label ASC`,
		Vars:               []interface{}{string(*s.Pivot)},
		WithoutParentheses: true,
	}})
}

func (s PivotOrder) Less(a, b entity.CorpusRecord) bool {
	if s.Pivot != nil {
		ba, bb := bucket(a.RootNote(), *s.Pivot), bucket(b.RootNote(), *s.Pivot)
		if ba != bb {
			return ba < bb
		}
	}
	if a.RootNote() != b.RootNote() {
		return a.RootNote() < b.RootNote()
	}
	return a.DisplayName() < b.DisplayName()
}

func bucket(root, pivot entity.PitchClass) int {
	if root >= pivot {
		return 1
	}
	return 2
}

func contains(notes []entity.PitchClass, n entity.PitchClass) bool {
	for _, x := range notes {
		if x == n {
			return true
		}
	}
	return false
}

func overlap(candidate, target []entity.PitchClass) int {
	count := 0
	for _, n := range candidate {
		if contains(target, n) {
			count++
		}
	}
	return count
}

// hasWordPrefix mirrors the postgres \m (start of word) anchor.
func hasWordPrefix(s, token string) bool {
	if token == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(token)
	if !isWordRune(first) {
		return false
	}
	sr, tr := []rune(s), []rune(token)
	for i := 0; i+len(tr) <= len(sr); i++ {
		if i > 0 && isWordRune(sr[i-1]) {
			continue
		}
		if equalFoldRunes(sr[i:i+len(tr)], tr) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func equalFoldRunes(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
