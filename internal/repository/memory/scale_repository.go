package memory

import (
	"context"
	"sort"
	"sync"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/specification"
)

// ScaleRepository keeps the scale corpus in memory. Reads return copies.
type ScaleRepository struct {
	mu     sync.RWMutex
	groups map[int]string
	scales []*entity.ScaleRecord
}

func NewScaleRepository(groups []*entity.ScaleGroup, records ...*entity.ScaleRecord) *ScaleRepository {
	r := &ScaleRepository{groups: make(map[int]string)}
	for _, g := range groups {
		r.groups[g.Id] = g.Name
	}
	for _, rec := range records {
		r.put(rec)
	}
	return r
}

var _ contract.ScaleRepository = (*ScaleRepository)(nil)

func (r *ScaleRepository) put(rec *entity.ScaleRecord) {
	for _, s := range r.scales {
		if s.Name == rec.Name && s.Root == rec.Root {
			return
		}
	}
	c := cloneScale(rec)
	c.Notes = entity.RotateFromRoot(c.Notes, c.Root)
	if name, ok := r.groups[c.GroupId]; ok {
		c.GroupName = name
	}
	r.scales = append(r.scales, c)
}

func (r *ScaleRepository) Create(ctx context.Context, scale *entity.ScaleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(scale)
	return ctx.Err()
}

func (r *ScaleRepository) CreateGroup(ctx context.Context, group *entity.ScaleGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[group.Id]; !ok {
		r.groups[group.Id] = group.Name
	}
	return ctx.Err()
}

func (r *ScaleRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScaleRecord, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *ScaleRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := selectRecords(r.scales, specs)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ScaleRecord, len(matched))
	for i, s := range matched {
		out[i] = cloneScale(s)
	}
	return out, nil
}

func (r *ScaleRepository) FindGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleGroup, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	groups := make([]*entity.ScaleGroup, 0)
	for _, s := range all {
		if seen[s.GroupId] {
			continue
		}
		seen[s.GroupId] = true
		groups = append(groups, &entity.ScaleGroup{Id: s.GroupId, Name: s.GroupName})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Id < groups[j].Id })
	return groups, nil
}

func (r *ScaleRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func cloneScale(s *entity.ScaleRecord) *entity.ScaleRecord {
	out := *s
	out.Notes = copyNotes(s.Notes)
	return &out
}
