// Package checkpoint handles saved model weights: the on-disk codec, the
// retention policy that bounds how many weight files a run keeps, and the
// best-effort warm-start merge for mismatched checkpoints.
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("checkpoint version mismatch")

// Encode serializes a state dict into the versioned checkpoint payload.
func Encode(params model.StateDict) ([]byte, error) {
	ckpt := model.Checkpoint{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: CurrentSchemaVersion,
			CodecVersion:  CurrentCodecVersion,
		},
		Params: params,
	}
	return json.Marshal(ckpt)
}

// Decode parses a checkpoint payload and validates every tensor against
// its declared shape. Any failure here is fatal to the caller: a
// checkpoint that cannot be decoded cannot be partially trusted either.
func Decode(data []byte) (model.StateDict, error) {
	var ckpt model.Checkpoint
	if err := json.Unmarshal(data, &ckpt); err != nil {
		return nil, err
	}
	if ckpt.SchemaVersion != CurrentSchemaVersion || ckpt.CodecVersion != CurrentCodecVersion {
		return nil, ErrVersionMismatch
	}
	for name, tensor := range ckpt.Params {
		if err := tensor.Validate(); err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
	}
	if ckpt.Params == nil {
		ckpt.Params = model.StateDict{}
	}
	return ckpt.Params, nil
}

// Save writes a state dict to path.
func Save(path string, params model.StateDict) error {
	data, err := Encode(params)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// Load reads a state dict from path. Read and decode errors propagate
// unchanged so the caller can abort whatever requested the load.
func Load(path string) (model.StateDict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	params, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode checkpoint %s: %w", path, err)
	}
	return params, nil
}
