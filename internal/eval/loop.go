// Package eval drives validation passes over a labeled dataset. The
// model, the decoder, and the scoring functions are all external; this
// package only orchestrates prediction calls and aggregates their scores
// weighted by batch size.
package eval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/VitaliiAI/OCRMaster/internal/metrics"
)

// Batch pairs opaque model inputs with their reference transcriptions.
type Batch struct {
	Inputs any
	Refs   []string
}

// BatchSource yields batches until exhaustion. Next returns false when
// the dataset is drained.
type BatchSource interface {
	Next(ctx context.Context) (Batch, bool, error)
}

// Predictor runs the model plus decoder over one batch and returns the
// predicted transcriptions, one per reference.
type Predictor func(ctx context.Context, batch Batch) ([]string, error)

// Scorer computes a per-batch scalar score from aligned reference and
// predicted transcriptions.
type Scorer func(refs, preds []string) float64

// Scorers bundles the three text metrics the validation loop reports.
type Scorers struct {
	Accuracy Scorer
	WER      Scorer
	CER      Scorer
}

// Result holds the batch-size-weighted metric averages for one pass.
type Result struct {
	Accuracy float64
	WER      float64
	CER      float64
	Batches  int
	Samples  int
	Elapsed  time.Duration
}

// Loop consumes every batch from source, scores predictions, and returns
// the weighted averages. A predictor failure aborts the pass.
func Loop(ctx context.Context, source BatchSource, predict Predictor, scorers Scorers, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var accAvg, werAvg, cerAvg metrics.AverageMeter
	start := time.Now()
	batches := 0

	for {
		batch, ok, err := source.Next(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("next batch: %w", err)
		}
		if !ok {
			break
		}

		preds, err := predict(ctx, batch)
		if err != nil {
			return Result{}, fmt.Errorf("predict batch %d: %w", batches, err)
		}
		if len(preds) != len(batch.Refs) {
			return Result{}, fmt.Errorf("predict batch %d: %d predictions for %d references", batches, len(preds), len(batch.Refs))
		}

		size := len(batch.Refs)
		if err := accAvg.Update(scorers.Accuracy(batch.Refs, preds), size); err != nil {
			return Result{}, err
		}
		if err := werAvg.Update(scorers.WER(batch.Refs, preds), size); err != nil {
			return Result{}, err
		}
		if err := cerAvg.Update(scorers.CER(batch.Refs, preds), size); err != nil {
			return Result{}, err
		}
		batches++
	}

	result := Result{
		Accuracy: accAvg.Avg(),
		WER:      werAvg.Avg(),
		CER:      cerAvg.Avg(),
		Batches:  batches,
		Samples:  accAvg.Count(),
		Elapsed:  time.Since(start),
	}

	logger.Info("validation",
		slog.String("acc", fmt.Sprintf("%.4f", result.Accuracy)),
		slog.String("wer", fmt.Sprintf("%.4f", result.WER)),
		slog.String("cer", fmt.Sprintf("%.4f", result.CER)),
		slog.String("loop_time", formatElapsed(result.Elapsed)))
	return result, nil
}

// SliceSource adapts an in-memory batch slice to BatchSource.
type SliceSource struct {
	batches []Batch
	pos     int
}

func NewSliceSource(batches []Batch) *SliceSource {
	return &SliceSource{batches: batches}
}

func (s *SliceSource) Next(ctx context.Context) (Batch, bool, error) {
	if err := ctx.Err(); err != nil {
		return Batch{}, false, err
	}
	if s.pos >= len(s.batches) {
		return Batch{}, false, nil
	}
	batch := s.batches[s.pos]
	s.pos++
	return batch, true, nil
}

// formatElapsed renders a duration as whole minutes and seconds, the way
// run logs report loop time.
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
