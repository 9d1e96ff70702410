package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDefaultConfig(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Error("stdout output differs from the embedded default")
	}

	path := filepath.Join(t.TempDir(), "configs", "minesweeper.yaml")
	if err := writeDefaultConfigFile(path); err != nil {
		t.Fatalf("writeDefaultConfigFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, config.DefaultYAML()) {
		t.Error("written file differs from the embedded default")
	}
	if _, err := config.LoadMinesweeper(path); err != nil {
		t.Errorf("written file does not load: %v", err)
	}

	if err := writeDefaultConfigFile(path); err == nil {
		t.Error("second write should refuse to overwrite")
	}
}
