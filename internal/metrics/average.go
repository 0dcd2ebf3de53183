// Package metrics carries the scalar aggregation used by the validation
// loop. Scoring functions themselves (accuracy, WER, CER) live outside
// this module and are injected where needed.
package metrics

import "errors"

// ErrNegativeWeight is returned when an update carries a negative weight.
var ErrNegativeWeight = errors.New("negative update weight")

// AverageMeter accumulates a weighted running mean over a stream of
// (value, weight) observations. The zero value is ready to use. It is
// owned by a single goroutine; callers needing concurrency keep one
// meter per worker and merge at synchronization points.
type AverageMeter struct {
	sum   float64
	count int
	avg   float64
}

// Reset clears all accumulated state.
func (m *AverageMeter) Reset() {
	m.sum = 0
	m.count = 0
	m.avg = 0
}

// Update folds value into the mean with the given weight, typically the
// batch size. A zero weight is a no-op; a negative weight is rejected.
func (m *AverageMeter) Update(value float64, weight int) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	if weight == 0 {
		return nil
	}
	m.sum += value * float64(weight)
	m.count += weight
	m.avg = m.sum / float64(m.count)
	return nil
}

// Avg returns the current weighted mean, 0 before any update.
func (m *AverageMeter) Avg() float64 { return m.avg }

// Sum returns the weighted sum of all observed values.
func (m *AverageMeter) Sum() float64 { return m.sum }

// Count returns the total accumulated weight.
func (m *AverageMeter) Count() int { return m.count }
