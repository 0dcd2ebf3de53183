// Package stats persists per-run artifacts as plain JSON files so runs
// can be inspected and compared without opening the store.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

const runIndexFile = "run_index.json"

// RunConfig records the settings one training/evaluation run started with.
type RunConfig struct {
	RunID           string `json:"run_id"`
	Dataset         string `json:"dataset,omitempty"`
	CheckpointDir   string `json:"checkpoint_dir,omitempty"`
	KeepCheckpoints int    `json:"keep_checkpoints,omitempty"`
	PretrainedPath  string `json:"pretrained_path,omitempty"`
	LogPath         string `json:"log_path,omitempty"`
	Seed            int64  `json:"seed,omitempty"`
}

// RunArtifacts bundles everything written for one run.
type RunArtifacts struct {
	Config        RunConfig          `json:"config"`
	EvalHistory   []model.EvalRecord `json:"eval_history,omitempty"`
	FinalAccuracy float64            `json:"final_accuracy"`
}

// RunIndexEntry is one line of the cross-run index.
type RunIndexEntry struct {
	RunID         string  `json:"run_id"`
	Dataset       string  `json:"dataset,omitempty"`
	FinalAccuracy float64 `json:"final_accuracy"`
	Samples       int     `json:"samples"`
	CreatedAtUTC  string  `json:"created_at_utc"`
}

func WriteRunArtifacts(baseDir string, artifacts RunArtifacts) (string, error) {
	if artifacts.Config.RunID == "" {
		return "", fmt.Errorf("run id is required")
	}

	runDir := filepath.Join(baseDir, artifacts.Config.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "config.json"), artifacts.Config); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "eval_history.json"), map[string]any{
		"eval_history":   artifacts.EvalHistory,
		"final_accuracy": artifacts.FinalAccuracy,
	}); err != nil {
		return "", err
	}

	return runDir, nil
}

func ReadRunConfig(baseDir, runID string) (RunConfig, bool, error) {
	path := filepath.Join(baseDir, runID, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return RunConfig{}, false, nil
		}
		return RunConfig{}, false, err
	}

	var cfg RunConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, false, err
	}
	return cfg, true, nil
}

func ReadEvalHistory(baseDir, runID string) ([]model.EvalRecord, bool, error) {
	path := filepath.Join(baseDir, runID, "eval_history.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var payload struct {
		EvalHistory []model.EvalRecord `json:"eval_history"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, err
	}
	return payload.EvalHistory, true, nil
}

func AppendRunIndex(baseDir string, entry RunIndexEntry) error {
	if entry.RunID == "" {
		return fmt.Errorf("run id is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return err
	}

	index, err := ListRunIndex(baseDir)
	if err != nil {
		return err
	}

	for i := range index {
		if index[i].RunID == entry.RunID {
			index[i] = entry
			return writeJSON(filepath.Join(baseDir, runIndexFile), index)
		}
	}

	index = append(index, entry)
	return writeJSON(filepath.Join(baseDir, runIndexFile), index)
}

func ListRunIndex(baseDir string) ([]RunIndexEntry, error) {
	path := filepath.Join(baseDir, runIndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunIndexEntry{}, nil
		}
		return nil, err
	}

	var entries []RunIndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	type indexedEntry struct {
		entry RunIndexEntry
		idx   int
	}
	indexed := make([]indexedEntry, len(entries))
	for i := range entries {
		indexed[i] = indexedEntry{entry: entries[i], idx: i}
	}
	sort.Slice(indexed, func(i, j int) bool {
		if indexed[i].entry.CreatedAtUTC == indexed[j].entry.CreatedAtUTC {
			// Prefer later appended entries for equal timestamps.
			return indexed[i].idx > indexed[j].idx
		}
		return indexed[i].entry.CreatedAtUTC > indexed[j].entry.CreatedAtUTC
	})

	sorted := make([]RunIndexEntry, 0, len(indexed))
	for _, item := range indexed {
		sorted = append(sorted, item.entry)
	}
	return sorted, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
