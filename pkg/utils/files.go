package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if
// necessary. Archives (.zip, .7z) yield their first file; .gz streams
// are inflated; anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("utils: %s: empty archive", filename)
		}

		// read the first file in the archive
		decoder, err = zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: %s: empty archive", filename)
		}

		// read the first file in the archive
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, err
		}
	default:
		return data, nil
	}

	return io.ReadAll(decoder)
}
