package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/model"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/memory"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/internal/service"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/database"
	"soundkey-be/pkg/notation"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayNames[T interface{ DisplayName() string }](objs []T) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.DisplayName()
	}
	return out
}

// TestCorpusParity seeds postgres with the generated corpus and checks that
// every relationship query answers exactly like the in-memory corpus.
func TestCorpusParity(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, database.PoolConfig{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&model.ScaleGroup{}, &model.Scale{}, &model.ScaleNote{}, &model.Chord{}, &model.ChordNote{},
	))

	generated, err := corpus.Generate(notation.NewParser())
	require.NoError(t, err)

	ctx := context.Background()
	nop := logger.NewNopLogger()
	pgFactory := unitofwork.NewRepositoryFactory(gormDB, 10*time.Second)
	_, err = service.NewCorpusSeeder(pgFactory, nop).Seed(ctx, generated)
	require.NoError(t, err)

	memFactory := unitofwork.NewMemoryRepositoryFactory(
		memory.NewChordRepository(generated.Chords...),
		memory.NewScaleRepository(generated.ScaleGroups, generated.Scales...),
	)

	parser := notation.NewParser()
	pgChords := service.NewChordService(pgFactory, parser, nop)
	memChords := service.NewChordService(memFactory, parser, nop)
	pgScales := service.NewScaleService(pgFactory, parser, nop)
	memScales := service.NewScaleService(memFactory, parser, nop)

	cmaj7 := entity.RawNotes{"C", "E", "G", "B"}
	cMajor := entity.RawNotes{"C", "D", "E", "F", "G", "A", "B"}
	limiter := entity.RawNotes{"C", "E", "G"}

	chordCases := map[string]func(svc service.IChordService) ([]*entity.Chord, error){
		"lookup": func(svc service.IChordService) ([]*entity.Chord, error) {
			return svc.GetChords(ctx, limiter, "C", "Seven")
		},
		"extensions": func(svc service.IChordService) ([]*entity.Chord, error) {
			return svc.GetExtensions(ctx, limiter, nil, "", "Triad", "")
		},
		"alterations": func(svc service.IChordService) ([]*entity.Chord, error) {
			return svc.GetAlterations(ctx, cmaj7, nil)
		},
		"appendments": func(svc service.IChordService) ([]*entity.Chord, error) {
			return svc.GetAppendments(ctx, limiter, cMajor)
		},
		"deductions": func(svc service.IChordService) ([]*entity.Chord, error) {
			return svc.GetDeductions(ctx, cmaj7, nil)
		},
		"rotations": func(svc service.IChordService) ([]*entity.Chord, error) {
			return svc.GetRotations(ctx, entity.RawNotes{"C", "D#", "F#", "A"}, nil, "")
		},
	}

	for name, query := range chordCases {
		t.Run("chord "+name, func(t *testing.T) {
			want, err := query(memChords)
			require.NoError(t, err)
			got, err := query(pgChords)
			require.NoError(t, err)
			assert.Equal(t, displayNames(want), displayNames(got))
		})
	}

	scaleCases := map[string]func(svc service.IScaleService) ([]*entity.Scale, error){
		"lookup": func(svc service.IScaleService) ([]*entity.Scale, error) {
			return svc.GetScales(ctx, nil, "C", "1")
		},
		"modes": func(svc service.IScaleService) ([]*entity.Scale, error) {
			return svc.GetScalesByMode(ctx, limiter, "E", "harmonic minor")
		},
		"deductions": func(svc service.IScaleService) ([]*entity.Scale, error) {
			return svc.GetDeductions(ctx, cMajor, nil)
		},
		"rotations": func(svc service.IScaleService) ([]*entity.Scale, error) {
			return svc.GetRotations(ctx, cMajor, nil, "")
		},
		"subscales": func(svc service.IScaleService) ([]*entity.Scale, error) {
			return svc.GetSubscales(ctx, cMajor, nil, 1, 0)
		},
		"search": func(svc service.IScaleService) ([]*entity.Scale, error) {
			return svc.SearchByName(ctx, "lyd dom", nil, entity.RawNotes{"E"})
		},
	}

	for name, query := range scaleCases {
		t.Run("scale "+name, func(t *testing.T) {
			want, err := query(memScales)
			require.NoError(t, err)
			got, err := query(pgScales)
			require.NoError(t, err)
			assert.Equal(t, displayNames(want), displayNames(got))
		})
	}

	t.Run("scale groups", func(t *testing.T) {
		want, err := memScales.GetScaleGroups(ctx, nil, "C", "Heptatonic")
		require.NoError(t, err)
		got, err := pgScales.GetScaleGroups(ctx, nil, "C", "Heptatonic")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
