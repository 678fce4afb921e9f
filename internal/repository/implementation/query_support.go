package implementation

import (
	"context"
	"time"

	"soundkey-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// withTimeout bounds a single corpus call. A zero timeout leaves the
// caller's deadline in charge.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func withoutOrdering(specs []specification.Specification) []specification.Specification {
	out := make([]specification.Specification, 0, len(specs))
	for _, s := range specs {
		if _, ok := s.(specification.Ordering); ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// noteAggregate joins a group's notes starting at its root.
const noteAggregate = `string_agg(hn.note, ',' ORDER BY CASE WHEN hn.note COLLATE "C" >= h.root_note THEN 1 ELSE 2 END, hn.note COLLATE "C") AS notes`
