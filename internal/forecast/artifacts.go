package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrArtifactNotFound is returned when a commodity has no trained
// model/scaler pair on disk.
var ErrArtifactNotFound = errors.New("model artifact not found")

// ArtifactStore loads per-commodity model artifacts from a directory:
// "<name>.json" exported weights and "<name>_scaler.json" scaler parameters,
// where spaces in the commodity name become underscores. Artifacts are
// reloaded on every call; the pipeline holds no cross-request state.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates an artifact store rooted at dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

const scalerSuffix = "_scaler.json"

func safeName(commodity string) string {
	return strings.ReplaceAll(commodity, " ", "_")
}

// Load reads the model and scaler for a commodity. Absence of either file
// yields ErrArtifactNotFound; a present-but-corrupt artifact is a real error.
func (s *ArtifactStore) Load(commodity string) (Model, ScalerParams, error) {
	safe := safeName(commodity)
	modelPath := filepath.Join(s.dir, safe+".json")
	scalerPath := filepath.Join(s.dir, safe+scalerSuffix)

	modelRaw, err := os.ReadFile(modelPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ScalerParams{}, ErrArtifactNotFound
		}
		return nil, ScalerParams{}, fmt.Errorf("read model artifact: %w", err)
	}
	scalerRaw, err := os.ReadFile(scalerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ScalerParams{}, ErrArtifactNotFound
		}
		return nil, ScalerParams{}, fmt.Errorf("read scaler artifact: %w", err)
	}

	var model LSTM
	if err := json.Unmarshal(modelRaw, &model); err != nil {
		return nil, ScalerParams{}, fmt.Errorf("decode model artifact for %s: %w", commodity, err)
	}
	if err := model.Validate(); err != nil {
		return nil, ScalerParams{}, fmt.Errorf("invalid model artifact for %s: %w", commodity, err)
	}

	var scaler ScalerParams
	if err := json.Unmarshal(scalerRaw, &scaler); err != nil {
		return nil, ScalerParams{}, fmt.Errorf("decode scaler artifact for %s: %w", commodity, err)
	}

	return &model, scaler, nil
}

// ListTrained returns the sorted commodity names that have both a model and
// a scaler artifact. A missing models directory is an empty list, not an
// error.
func (s *ArtifactStore) ListTrained() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read models directory: %w", err)
	}

	crops := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, scalerSuffix) {
			continue
		}
		safe := strings.TrimSuffix(name, ".json")
		if _, err := os.Stat(filepath.Join(s.dir, safe+scalerSuffix)); err != nil {
			continue
		}
		crops = append(crops, strings.ReplaceAll(safe, "_", " "))
	}
	sort.Strings(crops)
	return crops, nil
}
