package service

import (
	"context"
	"errors"
	"testing"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/memory"
	"soundkey-be/internal/repository/specification"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/notation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCorpusFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	c, err := corpus.Generate(notation.NewParser())
	require.NoError(t, err)
	return unitofwork.NewMemoryRepositoryFactory(
		memory.NewChordRepository(c.Chords...),
		memory.NewScaleRepository(c.ScaleGroups, c.Scales...),
	)
}

func newChordService(t *testing.T) IChordService {
	return NewChordService(newCorpusFactory(t), notation.NewParser(), logger.NewNopLogger())
}

func newScaleService(t *testing.T) IScaleService {
	return NewScaleService(newCorpusFactory(t), notation.NewParser(), logger.NewNopLogger())
}

func notes(names ...string) entity.RawNotes {
	return entity.RawNotes(names)
}

func chordSymbols(chords []*entity.Chord) []string {
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.Symbol
	}
	return out
}

func scaleNames(scales []*entity.Scale) []string {
	out := make([]string, len(scales))
	for i, s := range scales {
		out[i] = s.DisplayName()
	}
	return out
}

// assertPivotOrdered checks roots >= pivot come first and each partition
// is non-decreasing.
func assertPivotOrdered(t *testing.T, roots []entity.PitchClass, pivot entity.PitchClass) {
	t.Helper()
	inUpper := true
	var prev entity.PitchClass
	for i, r := range roots {
		upper := r >= pivot
		if !upper && inUpper {
			inUpper = false
			prev = ""
		}
		if upper && !inUpper {
			t.Fatalf("root %s at %d follows the wrapped partition", r, i)
		}
		assert.GreaterOrEqual(t, string(r), string(prev), "roots not ascending at %d", i)
		prev = r
	}
}

func countShared(a []string, b []string) int {
	set := make(map[string]bool, len(b))
	for _, n := range b {
		set[n] = true
	}
	shared := 0
	for _, n := range entity.DistinctPitchClasses(toPCs(a)) {
		if set[string(n)] {
			shared++
		}
	}
	return shared
}

func toPCs(names []string) []entity.PitchClass {
	out := make([]entity.PitchClass, len(names))
	for i, n := range names {
		out[i] = entity.PitchClass(n)
	}
	return out
}

// failingFactory hands out repositories whose every call fails.
type failingFactory struct{ err error }

func (f failingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return failingUnitOfWork(f)
}

type failingUnitOfWork struct{ err error }

func (u failingUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u failingUnitOfWork) Commit() error                   { return nil }
func (u failingUnitOfWork) Rollback() error                 { return nil }
func (u failingUnitOfWork) ChordRepository() contract.ChordRepository {
	return failingChords(u)
}
func (u failingUnitOfWork) ScaleRepository() contract.ScaleRepository {
	return failingScales(u)
}

type failingChords struct{ err error }

func (r failingChords) Create(ctx context.Context, chord *entity.ChordRecord) error { return r.err }
func (r failingChords) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChordRecord, error) {
	return nil, r.err
}
func (r failingChords) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChordRecord, error) {
	return nil, r.err
}
func (r failingChords) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, r.err
}

type failingScales struct{ err error }

func (r failingScales) Create(ctx context.Context, scale *entity.ScaleRecord) error { return r.err }
func (r failingScales) CreateGroup(ctx context.Context, group *entity.ScaleGroup) error {
	return r.err
}
func (r failingScales) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScaleRecord, error) {
	return nil, r.err
}
func (r failingScales) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleRecord, error) {
	return nil, r.err
}
func (r failingScales) FindGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleGroup, error) {
	return nil, r.err
}
func (r failingScales) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, r.err
}

// brokenNotation refuses to spell the listed chord symbols and scale names.
type brokenNotation struct {
	*notation.Parser
	broken map[string]bool
}

var errCannotSpell = errors.New("cannot spell")

func (n brokenNotation) ChordFromSymbol(symbol string) (*notation.Chord, error) {
	if n.broken[symbol] {
		return nil, errCannotSpell
	}
	return n.Parser.ChordFromSymbol(symbol)
}

func (n brokenNotation) ScaleFromSimple(root, name string, notes []string) (*notation.Scale, error) {
	if n.broken[name] {
		return nil, errCannotSpell
	}
	return n.Parser.ScaleFromSimple(root, name, notes)
}
