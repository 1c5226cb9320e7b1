package forecast

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifacts(t *testing.T, dir, name string, fcBias, min, max float64) {
	t.Helper()
	model := zeroLSTM(1, 1, fcBias)
	raw, err := json.Marshal(model)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), raw, 0o644))

	scaler, err := json.Marshal(ScalerParams{Min: min, Max: max})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+"_scaler.json"), scaler, 0o644))
}

func TestArtifactStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, "Black_Pepper", 0.5, 40000, 60000)

	store := NewArtifactStore(dir)
	model, scaler, err := store.Load("Black Pepper")
	require.NoError(t, err)
	assert.Equal(t, ScalerParams{Min: 40000, Max: 60000}, scaler)

	out, err := model.Predict([]float64{0.1})
	require.NoError(t, err)
	assert.Equal(t, 0.5, out)
}

func TestArtifactStoreLoadMissing(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	_, _, err := store.Load("Bajra")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactStoreLoadMissingScaler(t *testing.T) {
	dir := t.TempDir()
	model, err := json.Marshal(zeroLSTM(1, 1, 0))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Rice.json"), model, 0o644))

	store := NewArtifactStore(dir)
	_, _, err = store.Load("Rice")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Rice.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Rice_scaler.json"), []byte("{}"), 0o644))

	store := NewArtifactStore(dir)
	_, _, err := store.Load("Rice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactStoreListTrained(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, "Rice", 0, 0, 1)
	writeArtifacts(t, dir, "Black_Pepper", 0, 0, 1)
	// Model without a scaler is not trained.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Wheat.json"), []byte("{}"), 0o644))

	store := NewArtifactStore(dir)
	crops, err := store.ListTrained()
	require.NoError(t, err)
	assert.Equal(t, []string{"Black Pepper", "Rice"}, crops)
}

func TestArtifactStoreListTrainedMissingDir(t *testing.T) {
	store := NewArtifactStore(filepath.Join(t.TempDir(), "nope"))
	crops, err := store.ListTrained()
	require.NoError(t, err)
	assert.Empty(t, crops)
}
