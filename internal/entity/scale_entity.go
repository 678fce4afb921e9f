package entity

import "strings"

// ScaleGroup is a named bucket scales belong to, e.g. "diatonic".
type ScaleGroup struct {
	Id   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ScaleRecord is a scale row as stored in the corpus. Notes start at Root.
type ScaleRecord struct {
	Name      string       `json:"name" yaml:"name"`
	Root      PitchClass   `json:"root" yaml:"root"`
	GroupId   int          `json:"group_id" yaml:"group_id"`
	GroupName string       `json:"group_name" yaml:"group_name"`
	Notes     []PitchClass `json:"notes" yaml:"notes"`
}

func (r *ScaleRecord) RootNote() PitchClass   { return r.Root }
func (r *ScaleRecord) NoteList() []PitchClass { return r.Notes }
func (r *ScaleRecord) DisplayName() string    { return r.Name }
func (r *ScaleRecord) FullName() string       { return string(r.Root) + " " + r.Name }
func (r *ScaleRecord) CategoryOf() string     { return "" }
func (r *ScaleRecord) TriadBaseOf() *string   { return nil }
func (r *ScaleRecord) GroupIDOf() int         { return r.GroupId }
func (r *ScaleRecord) GroupNameOf() string    { return r.GroupName }

// JoinedNotes renders the note list the way the corpus aggregates it.
func (r *ScaleRecord) JoinedNotes() string {
	return strings.Join(PitchClassNames(r.Notes), ",")
}

// Scale is a reconstructed scale handed back to callers.
type Scale struct {
	Name      string     `json:"name"`
	Root      PitchClass `json:"root"`
	RootPitch Note       `json:"root_note"`
	GroupId   int        `json:"group_id"`
	GroupName string     `json:"group_name"`
	Notes     []Note     `json:"notes"`
}

func (s *Scale) DisplayName() string  { return string(s.Root) + " " + s.Name }
func (s *Scale) RootNote() PitchClass { return s.Root }
func (s *Scale) NoteNames() []string  { return noteLabels(s.Notes) }
