package journal

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Recorder receives every reconciled record.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Nop discards entries. It is used when the journal is disabled.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

// Store writes entries of one run to the database.
type Store struct {
	db      *gorm.DB
	runID   string
	command string
}

// NewStore returns a Store that stamps entries with runID and command.
func NewStore(db *gorm.DB, runID, command string) *Store {
	return &Store{db: db, runID: runID, command: command}
}

// Migrate creates or updates the journal table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate import journal: %w", err)
	}
	return nil
}

// Record appends e. Empty RunID and Command are filled from the store.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.RunID == "" {
		e.RunID = s.runID
	}
	if e.Command == "" {
		e.Command = s.command
	}
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return fmt.Errorf("failed to record %s: %w", e.SKU, err)
	}
	return nil
}

// ListRun returns the entries of a run in insertion order.
func (s *Store) ListRun(ctx context.Context, runID string) ([]Entry, error) {
	var entries []Entry
	if err := s.db.WithContext(ctx).Where("run_id = ?", runID).Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list run %s: %w", runID, err)
	}
	return entries, nil
}
