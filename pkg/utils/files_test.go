package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gb")
	want := []byte{0x00, 0xC3, 0x50, 0x01}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLoadFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gb.gz")
	want := []byte("compressed rom image")

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoadFile_Zip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.zip")
	want := []byte("zipped rom image")

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("test.gb")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
