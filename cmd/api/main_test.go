package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDumpCmd_FileStorage(t *testing.T) {
	dir := t.TempDir()
	data := `{"version":1,"key":"pet_health_weight","data":{"rex":[{"pet_id":"rex","timestamp":"2024-06-01T08:00:00Z","weight_grams":4200}]}}`
	if err := os.WriteFile(filepath.Join(dir, "pet_health_weight.json"), []byte(data), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	t.Setenv("PETS_FILE", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"dump", "--storage-driver", "file", "--storage-path", dir})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got struct {
		Pets map[string]map[string][]map[string]any `json:"pets"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output not json: %v\n%s", err, out.String())
	}
	w := got.Pets["rex"]["weight"]
	if len(w) != 1 || w[0]["weight_grams"] != float64(4200) {
		t.Fatalf("unexpected dump %v", got.Pets)
	}
}

func TestRootCmd_RejectsInvalidConfig(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"dump", "--storage-driver", "file"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error: file storage without path")
	}
}
