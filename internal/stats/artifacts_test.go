package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

func TestWriteAndReadRunArtifacts(t *testing.T) {
	baseDir := t.TempDir()
	artifacts := RunArtifacts{
		Config: RunConfig{
			RunID:           "run-1",
			Dataset:         "val",
			CheckpointDir:   "weights",
			KeepCheckpoints: 2,
		},
		EvalHistory: []model.EvalRecord{
			{RunID: "run-1", Accuracy: 0.8, WER: 0.3, CER: 0.1, Samples: 50},
			{RunID: "run-1", Accuracy: 0.9, WER: 0.2, CER: 0.07, Samples: 50},
		},
		FinalAccuracy: 0.9,
	}

	runDir, err := WriteRunArtifacts(baseDir, artifacts)
	require.NoError(t, err)
	assert.DirExists(t, runDir)

	cfg, ok, err := ReadRunConfig(baseDir, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "val", cfg.Dataset)
	assert.Equal(t, 2, cfg.KeepCheckpoints)

	history, ok, err := ReadEvalHistory(baseDir, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, history, 2)
	assert.Equal(t, 0.9, history[1].Accuracy)
}

func TestWriteRunArtifactsRequiresRunID(t *testing.T) {
	_, err := WriteRunArtifacts(t.TempDir(), RunArtifacts{})
	require.Error(t, err)
}

func TestReadRunConfigMissing(t *testing.T) {
	_, ok, err := ReadRunConfig(t.TempDir(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunIndexAppendAndReplace(t *testing.T) {
	baseDir := t.TempDir()

	require.NoError(t, AppendRunIndex(baseDir, RunIndexEntry{
		RunID: "run-1", FinalAccuracy: 0.7, CreatedAtUTC: "2026-08-01T10:00:00Z",
	}))
	require.NoError(t, AppendRunIndex(baseDir, RunIndexEntry{
		RunID: "run-2", FinalAccuracy: 0.8, CreatedAtUTC: "2026-08-02T10:00:00Z",
	}))
	// Re-appending an existing run replaces its entry in place.
	require.NoError(t, AppendRunIndex(baseDir, RunIndexEntry{
		RunID: "run-1", FinalAccuracy: 0.75, CreatedAtUTC: "2026-08-01T10:00:00Z",
	}))

	index, err := ListRunIndex(baseDir)
	require.NoError(t, err)
	require.Len(t, index, 2)
	// Newest first.
	assert.Equal(t, "run-2", index[0].RunID)
	assert.Equal(t, 0.75, index[1].FinalAccuracy)
}

func TestListRunIndexEmpty(t *testing.T) {
	index, err := ListRunIndex(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, index)
}
