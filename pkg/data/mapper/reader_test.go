package mapper

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeSeriesFile(t *testing.T, values []float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "series.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("unable to create series file: %v", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	for _, v := range values {
		var buffer [observationSize]byte
		binary.LittleEndian.PutUint64(buffer[:], math.Float64bits(v))
		if _, err := f.Write(buffer[:]); err != nil {
			t.Fatalf("unable to write series file: %v", err)
		}
	}
	return path
}

func TestSeriesReader_ReadAll(t *testing.T) {
	values := []float64{0.5, -0.25, 1.5}
	reader := NewSeriesReader(writeSeriesFile(t, values))

	if err := reader.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if reader.Len() != len(values) {
		t.Fatalf("Len: got %d, want %d", reader.Len(), len(values))
	}

	observations, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(observations) != len(values) {
		t.Fatalf("observation count: got %d, want %d", len(observations), len(values))
	}
	for i, v := range values {
		got, _ := observations[i].Float64()
		if got != v {
			t.Errorf("observation %d: got %v, want %v", i, got, v)
		}
	}
}

func TestSeriesReader_ReadPastEnd(t *testing.T) {
	reader := NewSeriesReader(writeSeriesFile(t, []float64{1, 2}))

	if err := reader.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Read(2); err != EOF {
		t.Errorf("expected EOF past end, got %v", err)
	}
}

func TestSeriesReader_OpenMisalignedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	if err := os.WriteFile(path, make([]byte, observationSize+3), 0o644); err != nil {
		t.Fatalf("unable to write test file: %v", err)
	}

	reader := NewSeriesReader(path)
	if err := reader.Open(); err == nil {
		reader.Close()
		t.Error("expected error for misaligned file")
	}
}

func TestSeriesReader_OpenMissingFile(t *testing.T) {
	reader := NewSeriesReader(filepath.Join(t.TempDir(), "missing.bin"))
	if err := reader.Open(); err == nil {
		t.Error("expected error for missing file")
	}
}
