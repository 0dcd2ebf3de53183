package model

import "fmt"

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Tensor is a named model parameter: a flat value buffer plus the ordered
// dimension sizes that describe its layout.
type Tensor struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// NumElements returns the element count implied by the shape. A scalar
// (empty shape) counts as one element.
func (t Tensor) NumElements() int {
	n := 1
	for _, dim := range t.Shape {
		n *= dim
	}
	return n
}

// SameShape reports whether both tensors have identical dimension sizes in
// identical order.
func (t Tensor) SameShape(other Tensor) bool {
	if len(t.Shape) != len(other.Shape) {
		return false
	}
	for i := range t.Shape {
		if t.Shape[i] != other.Shape[i] {
			return false
		}
	}
	return true
}

// Validate checks that the value buffer matches the declared shape.
func (t Tensor) Validate() error {
	for _, dim := range t.Shape {
		if dim < 0 {
			return fmt.Errorf("negative dimension %d in shape %v", dim, t.Shape)
		}
	}
	if len(t.Data) != t.NumElements() {
		return fmt.Errorf("shape %v implies %d elements, buffer has %d", t.Shape, t.NumElements(), len(t.Data))
	}
	return nil
}

// StateDict maps parameter names to their tensors, mirroring the layout a
// model reports for its learnable weights.
type StateDict map[string]Tensor

// Clone returns a deep copy of the dictionary, including value buffers.
func (d StateDict) Clone() StateDict {
	out := make(StateDict, len(d))
	for name, tensor := range d {
		shape := make([]int, len(tensor.Shape))
		copy(shape, tensor.Shape)
		data := make([]float64, len(tensor.Data))
		copy(data, tensor.Data)
		out[name] = Tensor{Shape: shape, Data: data}
	}
	return out
}

// Checkpoint is the persisted form of a model's parameters.
type Checkpoint struct {
	VersionedRecord
	Params StateDict `json:"params"`
}

// EvalRecord summarizes one validation pass over a dataset.
type EvalRecord struct {
	VersionedRecord
	RunID        string  `json:"run_id"`
	Dataset      string  `json:"dataset"`
	Accuracy     float64 `json:"accuracy"`
	WER          float64 `json:"wer"`
	CER          float64 `json:"cer"`
	Samples      int     `json:"samples"`
	ElapsedMS    int64   `json:"elapsed_ms"`
	CreatedAtUTC string  `json:"created_at_utc"`
}

// CheckpointRecord tracks one saved weights file within a run.
type CheckpointRecord struct {
	VersionedRecord
	RunID      string  `json:"run_id"`
	Path       string  `json:"path"`
	Epoch      int     `json:"epoch"`
	Metric     float64 `json:"metric"`
	SavedAtUTC string  `json:"saved_at_utc"`
}
