package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	evals       map[string][]model.EvalRecord
	checkpoints map[string][]model.CheckpointRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.evals = make(map[string][]model.EvalRecord)
	s.checkpoints = make(map[string][]model.CheckpointRecord)
	return nil
}

func (s *MemoryStore) SaveEvalHistory(_ context.Context, runID string, history []model.EvalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evals[runID] = append([]model.EvalRecord(nil), history...)
	return nil
}

func (s *MemoryStore) GetEvalHistory(_ context.Context, runID string) ([]model.EvalRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.evals[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]model.EvalRecord(nil), history...), true, nil
}

func (s *MemoryStore) SaveCheckpointHistory(_ context.Context, runID string, history []model.CheckpointRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkpoints[runID] = append([]model.CheckpointRecord(nil), history...)
	return nil
}

func (s *MemoryStore) GetCheckpointHistory(_ context.Context, runID string) ([]model.CheckpointRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.checkpoints[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]model.CheckpointRecord(nil), history...), true, nil
}

func (s *MemoryStore) ListRunIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.evals)+len(s.checkpoints))
	for runID := range s.evals {
		seen[runID] = struct{}{}
	}
	for runID := range s.checkpoints {
		seen[runID] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for runID := range seen {
		ids = append(ids, runID)
	}
	sort.Strings(ids)
	return ids, nil
}
