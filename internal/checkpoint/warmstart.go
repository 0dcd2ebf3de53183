package checkpoint

import (
	"log/slog"
	"sort"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

// SkipReason explains why a parameter kept its freshly initialized value
// during a warm start.
type SkipReason string

const (
	SkipMissing       SkipReason = "missing in checkpoint"
	SkipShapeMismatch SkipReason = "shape mismatch"
)

// Skipped names one parameter that could not be transferred.
type Skipped struct {
	Key    string
	Reason SkipReason
}

// Merge copies values from source into a new dict shaped like target. A
// value transfers only when the key exists in both dicts and the shapes
// agree; everything else keeps the target value and is reported. Neither
// input is mutated. Skipped entries come back sorted by key.
func Merge(target, source model.StateDict) (model.StateDict, []Skipped) {
	merged := make(model.StateDict, len(target))
	var skipped []Skipped

	for key, tensor := range target {
		loaded, ok := source[key]
		switch {
		case !ok:
			merged[key] = tensor
			skipped = append(skipped, Skipped{Key: key, Reason: SkipMissing})
		case !tensor.SameShape(loaded):
			merged[key] = tensor
			skipped = append(skipped, Skipped{Key: key, Reason: SkipShapeMismatch})
		default:
			merged[key] = loaded
		}
	}

	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Key < skipped[j].Key })
	return merged, skipped
}

// LoadPretrained warm-starts target from the checkpoint at path, taking
// as many parameters as fit. Unloadable parameters are logged, not
// failed; an unreadable checkpoint file is fatal and propagates.
func LoadPretrained(path string, target model.StateDict, logger *slog.Logger) (model.StateDict, error) {
	if logger == nil {
		logger = slog.Default()
	}
	source, err := Load(path)
	if err != nil {
		return nil, err
	}

	merged, skipped := Merge(target, source)
	for _, skip := range skipped {
		logger.Info("weights not loaded",
			slog.String("param", skip.Key),
			slog.String("reason", string(skip.Reason)))
	}
	return merged, nil
}
