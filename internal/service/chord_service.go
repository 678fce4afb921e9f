package service

import (
	"context"
	"fmt"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/specification"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/pkg/notation"
)

const chordModule = "ChordService"

type IChordService interface {
	GetChords(ctx context.Context, limiter entity.NoteSource, root, category string) ([]*entity.Chord, error)
	GetExtensions(ctx context.Context, base, limiter entity.NoteSource, root, category, triadBase string) ([]*entity.Chord, error)
	GetAlterations(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Chord, error)
	GetAppendments(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Chord, error)
	GetDeductions(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Chord, error)
	GetRotations(ctx context.Context, base, limiter entity.NoteSource, root string) ([]*entity.Chord, error)
	GetCategoryAndTriadBase(ctx context.Context, root string, notes entity.NoteSource) (*entity.CategoryAndTriadBase, error)
}

type chordService struct {
	uowFactory unitofwork.RepositoryFactory
	notation   notation.Notation
	logger     logger.ILogger
}

func NewChordService(
	uowFactory unitofwork.RepositoryFactory,
	notation notation.Notation,
	logger logger.ILogger,
) IChordService {
	return &chordService{
		uowFactory: uowFactory,
		notation:   notation,
		logger:     logger,
	}
}

// GetChords lists the chords of one category on root.
func (s *chordService) GetChords(ctx context.Context, limiter entity.NoteSource, root, category string) ([]*entity.Chord, error) {
	rootPC, err := parseRoot(root)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidCategory)
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByRoot{Root: rootPC},
		specification.ByCategories{Categories: []entity.ChordCategory{entity.ChordCategory(category)}},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(rootPC))
	return s.find(ctx, "GetChords", specs)
}

// GetExtensions climbs one rung of the category ladder: chords on root
// holding every base note plus one. Thirteen has no next rung and yields
// an empty list.
func (s *chordService) GetExtensions(ctx context.Context, base, limiter entity.NoteSource, root, category, triadBase string) ([]*entity.Chord, error) {
	notes, err := baseSet(base)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidCategory)
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	rootPC, err := resolveRoot(root, base, notes)
	if err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	next, ok := entity.NextCategories(entity.ChordCategory(category))
	if !ok {
		return []*entity.Chord{}, nil
	}

	specs := []specification.Specification{
		specification.ByRoot{Root: rootPC},
		specification.ByCategories{Categories: next},
	}
	if triadBase != "" {
		specs = append(specs, specification.ByTriadBase{TriadBase: triadBase})
	}
	specs = append(specs,
		specification.NoteCountEquals{Count: len(notes) + 1},
		specification.OverlapEquals{Notes: notes, Count: len(notes)},
	)
	specs = append(specs, limit...)
	specs = append(specs, pivot(rootPC))
	return s.find(ctx, "GetExtensions", specs)
}

// GetAlterations swaps one base note: same size, all but one note shared.
func (s *chordService) GetAlterations(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Chord, error) {
	return s.related(ctx, "GetAlterations", base, limiter, 0, -1)
}

// GetAppendments adds one note to the base.
func (s *chordService) GetAppendments(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Chord, error) {
	return s.related(ctx, "GetAppendments", base, limiter, 1, 0)
}

// GetDeductions drops one base note.
func (s *chordService) GetDeductions(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Chord, error) {
	return s.related(ctx, "GetDeductions", base, limiter, -1, -1)
}

// GetRotations finds chords spelling exactly the base notes on any other
// root.
func (s *chordService) GetRotations(ctx context.Context, base, limiter entity.NoteSource, root string) ([]*entity.Chord, error) {
	notes, err := baseSet(base)
	if err != nil {
		return nil, err
	}
	rootPC, err := resolveRoot(root, base, notes)
	if err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.RootNot{Root: rootPC},
		specification.NoteCountEquals{Count: len(notes)},
		specification.OverlapEquals{Notes: notes, Count: len(notes)},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(rootPC))
	return s.find(ctx, "GetRotations", specs)
}

// GetCategoryAndTriadBase annotates an exact note combination on root.
// Combinations the corpus does not hold are Crafted.
func (s *chordService) GetCategoryAndTriadBase(ctx context.Context, root string, notes entity.NoteSource) (*entity.CategoryAndTriadBase, error) {
	rootPC, err := parseRoot(root)
	if err != nil {
		return nil, err
	}
	set, err := baseSet(notes)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rec, err := uow.ChordRepository().FindOne(ctx,
		specification.ByRoot{Root: rootPC},
		specification.NoteCountEquals{Count: len(set)},
		specification.OverlapEquals{Notes: set, Count: len(set)},
	)
	if err != nil {
		return nil, storageError(s.logger, chordModule, "GetCategoryAndTriadBase", err)
	}
	if rec == nil {
		return &entity.CategoryAndTriadBase{Category: entity.CategoryCrafted}, nil
	}
	return &entity.CategoryAndTriadBase{Category: rec.Category, TriadBase: rec.TriadBase}, nil
}

// related runs the size/overlap family: candidates hold len(base)+sizeDelta
// notes, len(base)+overlapDelta of them from the base. Results pivot on the
// first base note.
func (s *chordService) related(ctx context.Context, operation string, base, limiter entity.NoteSource, sizeDelta, overlapDelta int) ([]*entity.Chord, error) {
	notes, err := baseSet(base)
	if err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	size := len(notes) + sizeDelta
	if size < 1 {
		return []*entity.Chord{}, nil
	}

	specs := []specification.Specification{
		specification.NoteCountEquals{Count: size},
		specification.OverlapEquals{Notes: notes, Count: len(notes) + overlapDelta},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(notes[0]))
	return s.find(ctx, operation, specs)
}

// find runs specs and spells every row. Rows that fail to spell are
// dropped and logged.
func (s *chordService) find(ctx context.Context, operation string, specs []specification.Specification) ([]*entity.Chord, error) {
	s.logger.Debug(chordModule, "Querying chords", map[string]interface{}{
		"operation": operation,
		"specs":     len(specs),
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.ChordRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, storageError(s.logger, chordModule, operation, err)
	}

	chords := make([]*entity.Chord, 0, len(records))
	for _, rec := range records {
		chord, err := chordFromRecord(s.notation, rec)
		if err != nil {
			s.logger.Warn(chordModule, "Dropping chord row", map[string]interface{}{
				"operation": operation,
				"symbol":    rec.Symbol,
				"error":     err.Error(),
			})
			continue
		}
		chords = append(chords, chord)
	}
	return chords, nil
}
