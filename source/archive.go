package source

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenFile opens a data export, decompressing .gz, .lz4 and .zip on the fly.
// For zip archives the largest file is read.
func OpenFile(filePath string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".zip":
		return openZip(filePath)
	case ".gz":
		file, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		gr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open gzip %s: %w", filePath, err)
		}
		return &readCloser{Reader: gr, closers: []io.Closer{file, gr}}, nil
	case ".lz4":
		file, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
	}
	return os.Open(filePath)
}

func openZip(filePath string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, err
	}

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, fmt.Errorf("zip %s has no files", filePath)
	}

	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, err
	}
	return &readCloser{Reader: rc, closers: []io.Closer{r, rc}}, nil
}
