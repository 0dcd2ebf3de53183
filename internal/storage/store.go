package storage

import (
	"context"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

// Store defines persistence operations for run-scoped evaluation and
// checkpoint history.
type Store interface {
	Init(ctx context.Context) error
	SaveEvalHistory(ctx context.Context, runID string, history []model.EvalRecord) error
	GetEvalHistory(ctx context.Context, runID string) ([]model.EvalRecord, bool, error)
	SaveCheckpointHistory(ctx context.Context, runID string, history []model.CheckpointRecord) error
	GetCheckpointHistory(ctx context.Context, runID string) ([]model.CheckpointRecord, bool, error)
	ListRunIDs(ctx context.Context) ([]string, error)
}
