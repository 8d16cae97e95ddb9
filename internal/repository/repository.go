package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lucky_wheel/internal/model"
)

var ErrNotFound = errors.New("record not found")

// SpinRepository is the spin journal.
type SpinRepository interface {
	Create(ctx context.Context, rec *model.SpinRecord) error
	Get(ctx context.Context, id uuid.UUID) (*model.SpinRecord, error)
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]model.SpinRecord, error)
}

// StatsRepository keeps running fairness statistics in memory.
type StatsRepository interface {
	Record(obs model.SpinObservation)
	Stats() model.SpinStats
}
