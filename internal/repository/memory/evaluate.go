package memory

import (
	"fmt"
	"sort"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/specification"
)

// selectRecords filters records with every Predicate in specs and sorts the
// survivors by the Orderings, in the order given.
func selectRecords[T entity.CorpusRecord](records []T, specs []specification.Specification) ([]T, error) {
	var predicates []specification.Predicate
	var orderings []specification.Ordering
	for _, s := range specs {
		switch v := s.(type) {
		case specification.Predicate:
			predicates = append(predicates, v)
		case specification.Ordering:
			orderings = append(orderings, v)
		default:
			return nil, fmt.Errorf("memory: unsupported specification %T", s)
		}
	}

	out := make([]T, 0)
	for _, r := range records {
		if satisfiesAll(r, predicates) {
			out = append(out, r)
		}
	}

	if len(orderings) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range orderings {
				if o.Less(out[i], out[j]) {
					return true
				}
				if o.Less(out[j], out[i]) {
					return false
				}
			}
			return false
		})
	}
	return out, nil
}

func satisfiesAll(r entity.CorpusRecord, predicates []specification.Predicate) bool {
	for _, p := range predicates {
		if !p.IsSatisfiedBy(r) {
			return false
		}
	}
	return true
}

func copyNotes(notes []entity.PitchClass) []entity.PitchClass {
	out := make([]entity.PitchClass, len(notes))
	copy(out, notes)
	return out
}
