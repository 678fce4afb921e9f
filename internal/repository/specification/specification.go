package specification

import (
	"soundkey-be/internal/entity"

	"gorm.io/gorm"
)

// Specification defines the interface for query specifications
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Predicate is a Specification that can also be evaluated against a record
// held in memory. Every corpus filter implements it so the same query runs
// against postgres and against the in-memory corpus.
type Predicate interface {
	Specification
	IsSatisfiedBy(r entity.CorpusRecord) bool
}

// Ordering is a Specification that sorts results.
type Ordering interface {
	Specification
	Less(a, b entity.CorpusRecord) bool
}
