package schedule

import (
	"go.uber.org/zap"
)

// DayContext supplies the current weekday name.
type DayContext interface {
	Today() string
}

// Service answers schedule reads and applies schedule mutations for a caller.
// It holds no mutable state; the entry store is the only source of truth.
type Service struct {
	Entries  EntryStore
	Subjects SubjectCatalog
	Resolver Resolver
	Days     DayContext
	Log      *zap.Logger
}

func NewService(entries EntryStore, profiles ProfileStore, subjects SubjectCatalog, days DayContext, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Entries:  entries,
		Subjects: subjects,
		Resolver: Resolver{Profiles: profiles},
		Days:     days,
		Log:      log,
	}
}
