package implementation

import (
	"testing"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/model"
	"soundkey-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=soundkey dbname=soundkey sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestChordRepository_GroupedQuery(t *testing.T) {
	db := dryRunDB(t)
	repo := NewChordRepository(db, 0).(*ChordRepositoryImpl)
	pivot := entity.PitchC

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var aggs []*model.ChordAggregate
		return applySpecifications(repo.grouped(tx),
			specification.ByRoot{Root: entity.PitchC},
			specification.NoteCountEquals{Count: 4},
			specification.PivotOrder{Pivot: &pivot},
		).Find(&aggs)
	})

	assert.Contains(t, sql, `FROM chords AS h JOIN chord_has_note hn ON hn.chord_symbol = h.symbol AND hn.root_note = h.root_note`)
	assert.Contains(t, sql, `h.symbol AS label`)
	assert.Contains(t, sql, `string_agg(hn.note, ',' ORDER BY CASE WHEN hn.note COLLATE "C" >= h.root_note THEN 1 ELSE 2 END, hn.note COLLATE "C") AS notes`)
	assert.Contains(t, sql, `WHERE h.root_note = 'C'`)
	assert.Contains(t, sql, `GROUP BY h.symbol, h.name, h.root_note, h.category, h.triad_base HAVING COUNT(hn.note) = 4`)
	assert.Contains(t, sql, `ORDER BY CASE WHEN h.root_note COLLATE "C" >= 'C'`)
}

func TestScaleRepository_GroupedQuery(t *testing.T) {
	db := dryRunDB(t)
	repo := NewScaleRepository(db, 0).(*ScaleRepositoryImpl)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var aggs []*model.ScaleAggregate
		return applySpecifications(repo.grouped(tx),
			specification.ByGroupName{Name: "diatonic"},
			specification.LimitedBy{Notes: []entity.PitchClass{"C", "E"}},
		).Find(&aggs)
	})

	assert.Contains(t, sql, `FROM scales AS h`)
	assert.Contains(t, sql, `JOIN scale_groups g ON g.id = h.group_id`)
	assert.Contains(t, sql, `h.name AS label`)
	assert.Contains(t, sql, `WHERE g.name = 'diatonic'`)
	assert.Contains(t, sql, `LEAST(COUNT(DISTINCT hn.note), 2)`)
}

func TestWithoutOrdering(t *testing.T) {
	pivot := entity.PitchC
	specs := []specification.Specification{
		specification.ByRoot{Root: entity.PitchC},
		specification.PivotOrder{Pivot: &pivot},
		specification.NoteCountEquals{Count: 3},
	}

	got := withoutOrdering(specs)
	assert.Equal(t, []specification.Specification{specs[0], specs[2]}, got)
}
