package service

import (
	"context"
	"fmt"

	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/pkg/corpus"
)

type SeedResult struct {
	ScaleGroups int
	Scales      int
	Chords      int
}

// ICorpusSeeder loads a corpus into storage in a single transaction.
// Existing rows are left untouched.
type ICorpusSeeder interface {
	Seed(ctx context.Context, c *corpus.Corpus) (*SeedResult, error)
}

type corpusSeeder struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCorpusSeeder(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ICorpusSeeder {
	return &corpusSeeder{uowFactory: uowFactory, logger: logger}
}

func (s *corpusSeeder) Seed(ctx context.Context, c *corpus.Corpus) (*SeedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	scales := uow.ScaleRepository()
	chords := uow.ChordRepository()

	for _, g := range c.ScaleGroups {
		if err := scales.CreateGroup(ctx, g); err != nil {
			return nil, fmt.Errorf("scale group %q: %w", g.Name, err)
		}
	}
	for _, sc := range c.Scales {
		if err := scales.Create(ctx, sc); err != nil {
			return nil, fmt.Errorf("scale %s %s: %w", sc.Root, sc.Name, err)
		}
	}
	for _, ch := range c.Chords {
		if err := chords.Create(ctx, ch); err != nil {
			return nil, fmt.Errorf("chord %s: %w", ch.Symbol, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := &SeedResult{
		ScaleGroups: len(c.ScaleGroups),
		Scales:      len(c.Scales),
		Chords:      len(c.Chords),
	}
	s.logger.Info("CorpusSeeder", "Corpus seeded", map[string]interface{}{
		"scale_groups": res.ScaleGroups,
		"scales":       res.Scales,
		"chords":       res.Chords,
	})
	return res, nil
}
