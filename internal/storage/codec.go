package storage

import (
	"encoding/json"
	"errors"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeEvalHistory(history []model.EvalRecord) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeEvalHistory(data []byte) ([]model.EvalRecord, error) {
	var history []model.EvalRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	for _, record := range history {
		if err := checkVersion(record.VersionedRecord); err != nil {
			return nil, err
		}
	}
	return history, nil
}

func EncodeCheckpointHistory(history []model.CheckpointRecord) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeCheckpointHistory(data []byte) ([]model.CheckpointRecord, error) {
	var history []model.CheckpointRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	for _, record := range history {
		if err := checkVersion(record.VersionedRecord); err != nil {
			return nil, err
		}
	}
	return history, nil
}

// Versioned stamps a record with the current schema and codec versions.
func Versioned() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
