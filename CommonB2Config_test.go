package box2d_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	box2d "github.com/ByteArena/box2d-contacts"
)

func TestParseContactConfigDefaults(t *testing.T) {
	config, err := box2d.ParseB2ContactConfig([]byte(""))
	if err != nil {
		t.Fatalf("empty document: %v", err)
	}

	if config != box2d.MakeB2ContactConfig() {
		t.Errorf("empty document should yield defaults, got %+v", config)
	}
}

func TestParseContactConfigOverrides(t *testing.T) {
	doc := `
pool:
  chunk_size: 8
metrics:
  enabled: true
`

	config, err := box2d.ParseB2ContactConfig([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if config.Pool.ChunkSize != 8 {
		t.Errorf("chunk size %d", config.Pool.ChunkSize)
	}

	if config.Pool.InitialCapacity != 0 {
		t.Errorf("initial capacity %d", config.Pool.InitialCapacity)
	}

	if !config.Metrics.Enabled || config.Metrics.Namespace != "box2d" {
		t.Errorf("metrics %+v", config.Metrics)
	}
}

func TestParseContactConfigRejectsInvalid(t *testing.T) {
	docs := map[string]string{
		"zero chunk":        "pool:\n  chunk_size: 0\n",
		"negative capacity": "pool:\n  initial_capacity: -1\n",
		"empty namespace":   "metrics:\n  enabled: true\n  namespace: \"\"\n",
		"malformed":         "pool: [1, 2\n",
		"wrong type":        "pool:\n  chunk_size: many\n",
	}

	for name, doc := range docs {
		if _, err := box2d.ParseB2ContactConfig([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadContactConfig(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "contacts.yaml")

	if err := os.WriteFile(filename, []byte("pool:\n  initial_capacity: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := box2d.LoadB2ContactConfig(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if config.Pool.InitialCapacity != 4 || config.Pool.ChunkSize != box2d.B2_contactPoolChunkSize {
		t.Errorf("pool %+v", config.Pool)
	}

	_, err = box2d.LoadB2ContactConfig(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}
