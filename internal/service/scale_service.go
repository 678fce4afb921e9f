package service

import (
	"context"
	"fmt"
	"strings"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/specification"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/pkg/notation"
)

const scaleModule = "ScaleService"

type IScaleService interface {
	GetScales(ctx context.Context, limiter entity.NoteSource, root, groupID string) ([]*entity.Scale, error)
	GetScaleGroups(ctx context.Context, limiter entity.NoteSource, root, scaleType string) ([]*entity.ScaleGroup, error)
	GetScalesByMode(ctx context.Context, limiter entity.NoteSource, root, mode string) ([]*entity.Scale, error)
	GetAlterations(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Scale, error)
	GetAppendments(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Scale, error)
	GetDeductions(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Scale, error)
	GetRotations(ctx context.Context, base, limiter entity.NoteSource, root string) ([]*entity.Scale, error)
	GetSubscales(ctx context.Context, base, limiter entity.NoteSource, alterBy, leaveOut int) ([]*entity.Scale, error)
	SearchByName(ctx context.Context, query string, base, limiter entity.NoteSource) ([]*entity.Scale, error)
}

type scaleService struct {
	uowFactory unitofwork.RepositoryFactory
	notation   notation.Notation
	logger     logger.ILogger
}

func NewScaleService(
	uowFactory unitofwork.RepositoryFactory,
	notation notation.Notation,
	logger logger.ILogger,
) IScaleService {
	return &scaleService{
		uowFactory: uowFactory,
		notation:   notation,
		logger:     logger,
	}
}

// GetScales lists the scales of one group on root. Unlike every other
// lookup, a stored row that cannot be spelled fails the whole call.
func (s *scaleService) GetScales(ctx context.Context, limiter entity.NoteSource, root, groupID string) ([]*entity.Scale, error) {
	rootPC, err := parseRoot(root)
	if err != nil {
		return nil, err
	}
	id, err := ValidateGroupID(groupID)
	if err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByRoot{Root: rootPC},
		specification.ByGroupID{GroupID: id},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(rootPC))

	records, err := s.query(ctx, "GetScales", specs)
	if err != nil {
		return nil, err
	}
	scales := make([]*entity.Scale, 0, len(records))
	for _, rec := range records {
		scale, err := scaleFromRecord(s.notation, rec)
		if err != nil {
			s.logger.Error(scaleModule, "Scale lookup aborted", map[string]interface{}{
				"scale": rec.FullName(),
				"error": err.Error(),
			})
			return nil, err
		}
		scales = append(scales, scale)
	}
	return scales, nil
}

// GetScaleGroups lists the groups having a scale on root with as many notes
// as scaleType stands for, ordered by group id.
func (s *scaleService) GetScaleGroups(ctx context.Context, limiter entity.NoteSource, root, scaleType string) ([]*entity.ScaleGroup, error) {
	rootPC, err := parseRoot(root)
	if err != nil {
		return nil, err
	}
	count, err := ValidateScaleType(scaleType)
	if err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByRoot{Root: rootPC},
		specification.NoteCountEquals{Count: count},
	}
	specs = append(specs, limit...)

	s.logger.Debug(scaleModule, "Querying scale groups", map[string]interface{}{
		"operation": "GetScaleGroups",
		"specs":     len(specs),
	})
	uow := s.uowFactory.NewUnitOfWork(ctx)
	groups, err := uow.ScaleRepository().FindGroups(ctx, specs...)
	if err != nil {
		return nil, storageError(s.logger, scaleModule, "GetScaleGroups", err)
	}
	if groups == nil {
		groups = []*entity.ScaleGroup{}
	}
	return groups, nil
}

// GetScalesByMode lists the scales on root whose group is mode.
func (s *scaleService) GetScalesByMode(ctx context.Context, limiter entity.NoteSource, root, mode string) ([]*entity.Scale, error) {
	rootPC, err := parseRoot(root)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		return nil, fmt.Errorf("%w: mode is required", ErrInvalidMode)
	}
	if err := ValidateMode(mode); err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByRoot{Root: rootPC},
		specification.ByGroupName{Name: mode},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(rootPC))
	return s.find(ctx, "GetScalesByMode", specs)
}

func (s *scaleService) GetAlterations(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Scale, error) {
	return s.related(ctx, "GetAlterations", base, limiter, 0, -1)
}

func (s *scaleService) GetAppendments(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Scale, error) {
	return s.related(ctx, "GetAppendments", base, limiter, 1, 0)
}

func (s *scaleService) GetDeductions(ctx context.Context, base, limiter entity.NoteSource) ([]*entity.Scale, error) {
	return s.related(ctx, "GetDeductions", base, limiter, -1, -1)
}

func (s *scaleService) GetRotations(ctx context.Context, base, limiter entity.NoteSource, root string) ([]*entity.Scale, error) {
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

// GetSubscales finds scales alterBy notes smaller than the base, rooted on a
// base note, sharing at least len(base)-alterBy-leaveOut notes with it.
// leaveOut is extra tolerance on top of the size drop; 0 asks for true
// subsets.
func (s *scaleService) GetSubscales(ctx context.Context, base, limiter entity.NoteSource, alterBy, leaveOut int) ([]*entity.Scale, error) {
	notes, err := baseSet(base)
	if err != nil {
		return nil, err
	}
	if alterBy < 1 || alterBy >= len(notes) {
		return nil, fmt.Errorf("%w: alter by %d on %d notes", ErrInvalidSubsetSize, alterBy, len(notes))
	}
	size := len(notes) - alterBy
	if leaveOut < 0 || leaveOut >= size {
		return nil, fmt.Errorf("%w: leave out %d on %d notes", ErrInvalidSubsetSize, leaveOut, size)
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.NoteCountEquals{Count: size},
		specification.OverlapAtLeast{Notes: notes, Count: size - leaveOut},
		specification.RootIn{Notes: notes},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(notes[0]))
	return s.find(ctx, "GetSubscales", specs)
}

// SearchByName matches scales whose "<root> <name>" has a word starting
// with each whitespace separated token of query. A blank query matches
// every scale, narrowed by the limiter. Results pivot on the base root,
// else the first limiter note, else plain root order.
func (s *scaleService) SearchByName(ctx context.Context, query string, base, limiter entity.NoteSource) ([]*entity.Scale, error) {
	baseNotes, err := NormalizeLookupInput(base)
	if err != nil {
		return nil, err
	}
	limiterNotes, err := NormalizeLookupInput(limiter)
	if err != nil {
		return nil, err
	}
	limit, err := limiterSpecs(limiter)
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(query)
	specs := make([]specification.Specification, 0, len(tokens)+2)
	for _, token := range tokens {
		specs = append(specs, specification.NameHasWordPrefix{Token: token})
	}
	specs = append(specs, limit...)

	order := specification.PivotOrder{}
	switch {
	case len(baseNotes) > 0:
		p, _ := resolveRoot("", base, baseNotes)
		order = pivot(p)
	case len(limiterNotes) > 0:
		order = pivot(limiterNotes[0])
	}
	specs = append(specs, order)
	return s.find(ctx, "SearchByName", specs)
}

func (s *scaleService) related(ctx context.Context, operation string, base, limiter entity.NoteSource, sizeDelta, overlapDelta int) ([]*entity.Scale, error) {
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
		return []*entity.Scale{}, nil
	}

	specs := []specification.Specification{
		specification.NoteCountEquals{Count: size},
		specification.OverlapEquals{Notes: notes, Count: len(notes) + overlapDelta},
	}
	specs = append(specs, limit...)
	specs = append(specs, pivot(notes[0]))
	return s.find(ctx, operation, specs)
}

func (s *scaleService) query(ctx context.Context, operation string, specs []specification.Specification) ([]*entity.ScaleRecord, error) {
	s.logger.Debug(scaleModule, "Querying scales", map[string]interface{}{
		"operation": operation,
		"specs":     len(specs),
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.ScaleRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, storageError(s.logger, scaleModule, operation, err)
	}
	return records, nil
}

func (s *scaleService) find(ctx context.Context, operation string, specs []specification.Specification) ([]*entity.Scale, error) {
	records, err := s.query(ctx, operation, specs)
	if err != nil {
		return nil, err
	}

	scales := make([]*entity.Scale, 0, len(records))
	for _, rec := range records {
		scale, err := scaleFromRecord(s.notation, rec)
		if err != nil {
			s.logger.Warn(scaleModule, "Dropping scale row", map[string]interface{}{
				"operation": operation,
				"scale":     rec.FullName(),
				"error":     err.Error(),
			})
			continue
		}
		scales = append(scales, scale)
	}
	return scales, nil
}
