package checkpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaliiAI/OCRMaster/internal/model"
)

func sampleDict() model.StateDict {
	return model.StateDict{
		"encoder.weight": {Shape: []int{2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}},
		"encoder.bias":   {Shape: []int{3}, Data: []float64{0.1, 0.2, 0.3}},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, Save(path, sampleDict()))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, []int{2, 3}, loaded["encoder.weight"].Shape)
	assert.InDelta(t, 6.0, loaded["encoder.weight"].Data[5], 1e-12)
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMalformedPayloadIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDecodeVersionMismatch(t *testing.T) {
	data := []byte(`{"schema_version":99,"codec_version":1,"params":{}}`)
	_, err := Decode(data)
	require.ErrorIs(t, err, ErrVersionMismatch)
}

func TestDecodeRejectsShapeDataDisagreement(t *testing.T) {
	data := []byte(`{"schema_version":1,"codec_version":1,"params":{"w":{"shape":[2,2],"data":[1,2,3]}}}`)
	_, err := Decode(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter w")
}
