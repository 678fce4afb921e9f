package memory

import (
	"context"
	"sync"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/specification"
)

// ChordRepository keeps the chord corpus in memory. Notes are stored
// starting at the root, as the postgres aggregate returns them. Reads
// return copies.
type ChordRepository struct {
	mu     sync.RWMutex
	chords []*entity.ChordRecord
}

func NewChordRepository(records ...*entity.ChordRecord) *ChordRepository {
	r := &ChordRepository{}
	for _, rec := range records {
		r.put(rec)
	}
	return r
}

var _ contract.ChordRepository = (*ChordRepository)(nil)

func (r *ChordRepository) put(rec *entity.ChordRecord) {
	for _, c := range r.chords {
		if c.Symbol == rec.Symbol && c.Root == rec.Root {
			return
		}
	}
	c := cloneChord(rec)
	c.Notes = entity.RotateFromRoot(c.Notes, c.Root)
	r.chords = append(r.chords, c)
}

func (r *ChordRepository) Create(ctx context.Context, chord *entity.ChordRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(chord)
	return ctx.Err()
}

func (r *ChordRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChordRecord, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *ChordRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChordRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := selectRecords(r.chords, specs)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ChordRecord, len(matched))
	for i, c := range matched {
		out[i] = cloneChord(c)
	}
	return out, nil
}

func (r *ChordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func cloneChord(c *entity.ChordRecord) *entity.ChordRecord {
	out := *c
	out.Notes = copyNotes(c.Notes)
	if c.TriadBase != nil {
		tb := *c.TriadBase
		out.TriadBase = &tb
	}
	return &out
}
