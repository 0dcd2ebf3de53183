package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

func TestMemoryStoreEvalHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := []model.EvalRecord{{
		VersionedRecord: Versioned(),
		RunID:           "run-1",
		Dataset:         "val",
		Accuracy:        0.91,
		WER:             0.12,
		CER:             0.05,
		Samples:         128,
	}}
	require.NoError(t, store.SaveEvalHistory(ctx, "run-1", input))

	output, ok, err := store.GetEvalHistory(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, output, 1)
	assert.Equal(t, 0.91, output[0].Accuracy)
	assert.Equal(t, 128, output[0].Samples)
}

func TestMemoryStoreCheckpointHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := []model.CheckpointRecord{
		{VersionedRecord: Versioned(), RunID: "run-1", Path: "w1.json", Epoch: 1, Metric: 0.8},
		{VersionedRecord: Versioned(), RunID: "run-1", Path: "w2.json", Epoch: 2, Metric: 0.85},
	}
	require.NoError(t, store.SaveCheckpointHistory(ctx, "run-1", input))

	output, ok, err := store.GetCheckpointHistory(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, output, 2)
	assert.Equal(t, "w2.json", output[1].Path)
}

func TestMemoryStoreMissingRun(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	_, ok, err := store.GetEvalHistory(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreListRunIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	require.NoError(t, store.SaveEvalHistory(ctx, "run-b", nil))
	require.NoError(t, store.SaveCheckpointHistory(ctx, "run-a", nil))
	require.NoError(t, store.SaveCheckpointHistory(ctx, "run-b", nil))

	ids, err := store.ListRunIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-a", "run-b"}, ids)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := []model.EvalRecord{{VersionedRecord: Versioned(), RunID: "run-1", Accuracy: 0.5}}
	require.NoError(t, store.SaveEvalHistory(ctx, "run-1", input))

	output, _, err := store.GetEvalHistory(ctx, "run-1")
	require.NoError(t, err)
	output[0].Accuracy = 0.99

	again, _, err := store.GetEvalHistory(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 0.5, again[0].Accuracy)
}
