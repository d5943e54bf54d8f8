package db

import (
	"context"

	"gorm.io/gorm"
)

// Session is an open unit of work. It is handed to the work function by the
// Coordinator and passed explicitly down the call chain so that nested calls
// join the outer transaction instead of committing on their own.
type Session struct {
	tx          *gorm.DB
	afterCommit []func()
}

func (s *Session) DB(ctx context.Context) *gorm.DB {
	return s.tx.WithContext(ctx)
}

// AfterCommit defers fn until the outermost transaction has committed.
// Hooks of an attempt that rolls back are discarded.
func (s *Session) AfterCommit(fn func()) {
	s.afterCommit = append(s.afterCommit, fn)
}

func (s *Session) runAfterCommit() {
	for _, fn := range s.afterCommit {
		fn()
	}
}
