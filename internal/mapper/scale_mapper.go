package mapper

import (
	"soundkey-be/internal/entity"
	"soundkey-be/internal/model"
)

type ScaleMapper struct{}

func NewScaleMapper() *ScaleMapper {
	return &ScaleMapper{}
}

func (m *ScaleMapper) ToEntity(a *model.ScaleAggregate) *entity.ScaleRecord {
	if a == nil {
		return nil
	}

	return &entity.ScaleRecord{
		Name:      a.Name,
		Root:      entity.PitchClass(a.RootNote),
		GroupId:   a.GroupId,
		GroupName: a.GroupName,
		Notes:     splitNotes(a.Notes),
	}
}

func (m *ScaleMapper) ToEntities(aggs []*model.ScaleAggregate) []*entity.ScaleRecord {
	entities := make([]*entity.ScaleRecord, len(aggs))
	for i, a := range aggs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *ScaleMapper) ToModel(r *entity.ScaleRecord) *model.Scale {
	if r == nil {
		return nil
	}

	notes := make([]model.ScaleNote, len(r.Notes))
	for i, n := range r.Notes {
		notes[i] = model.ScaleNote{
			ScaleName: r.Name,
			RootNote:  string(r.Root),
			Note:      string(n),
		}
	}

	return &model.Scale{
		Name:     r.Name,
		RootNote: string(r.Root),
		GroupId:  r.GroupId,
		Notes:    notes,
	}
}

func (m *ScaleMapper) GroupToEntity(g *model.ScaleGroup) *entity.ScaleGroup {
	if g == nil {
		return nil
	}
	return &entity.ScaleGroup{Id: g.Id, Name: g.Name}
}

func (m *ScaleMapper) GroupToEntities(groups []*model.ScaleGroup) []*entity.ScaleGroup {
	entities := make([]*entity.ScaleGroup, len(groups))
	for i, g := range groups {
		entities[i] = m.GroupToEntity(g)
	}
	return entities
}

func (m *ScaleMapper) GroupToModel(g *entity.ScaleGroup) *model.ScaleGroup {
	if g == nil {
		return nil
	}
	return &model.ScaleGroup{Id: g.Id, Name: g.Name}
}
