package helper

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExcludeID is a scope for IsTakenCI / EnsureUniqueSlugCI that skips the row being updated.
// A nil id excludes nothing.
func ExcludeID(column string, id uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if id == uuid.Nil {
			return q
		}
		return q.Where(column+" <> ?", id)
	}
}
