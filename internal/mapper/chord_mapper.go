package mapper

import (
	"strings"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/model"
)

type ChordMapper struct{}

func NewChordMapper() *ChordMapper {
	return &ChordMapper{}
}

func (m *ChordMapper) ToEntity(a *model.ChordAggregate) *entity.ChordRecord {
	if a == nil {
		return nil
	}

	return &entity.ChordRecord{
		Symbol:    a.Symbol,
		Name:      a.Name,
		Root:      entity.PitchClass(a.RootNote),
		Category:  entity.ChordCategory(a.Category),
		TriadBase: a.TriadBase,
		Notes:     splitNotes(a.Notes),
	}
}

func (m *ChordMapper) ToEntities(aggs []*model.ChordAggregate) []*entity.ChordRecord {
	entities := make([]*entity.ChordRecord, len(aggs))
	for i, a := range aggs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *ChordMapper) ToModel(r *entity.ChordRecord) *model.Chord {
	if r == nil {
		return nil
	}

	notes := make([]model.ChordNote, len(r.Notes))
	for i, n := range r.Notes {
		notes[i] = model.ChordNote{
			ChordSymbol: r.Symbol,
			RootNote:    string(r.Root),
			Note:        string(n),
		}
	}

	return &model.Chord{
		Symbol:    r.Symbol,
		RootNote:  string(r.Root),
		Name:      r.Name,
		Category:  string(r.Category),
		TriadBase: r.TriadBase,
		Notes:     notes,
	}
}

// splitNotes undoes the comma join of string_agg.
func splitNotes(joined string) []entity.PitchClass {
	if joined == "" {
		return []entity.PitchClass{}
	}
	parts := strings.Split(joined, ",")
	notes := make([]entity.PitchClass, len(parts))
	for i, p := range parts {
		notes[i] = entity.PitchClass(strings.TrimSpace(p))
	}
	return notes
}
