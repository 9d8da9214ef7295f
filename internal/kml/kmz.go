package kml

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"geoexport-api/internal/models"
)

// ErrExportIO is returned when the KMZ container cannot be produced. The
// destination path is left untouched on failure.
var ErrExportIO = errors.New("export I/O failure")

// Archive builds the KMZ container in memory: a zip holding the single
// entry doc.kml.
func Archive(name string, mode AltitudeMode, points []models.GeoPoint) ([]byte, error) {
	doc := BuildDocument(name, mode, points)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("doc.kml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	if _, err := entry.Write([]byte(doc)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return buf.Bytes(), nil
}

// WriteKMZ writes the KMZ container to path. The archive is staged in a
// temporary file next to the destination and renamed into place only once
// fully flushed, so a partial write never leaves a truncated container
// behind.
func WriteKMZ(path, name string, mode AltitudeMode, points []models.GeoPoint) error {
	data, err := Archive(name, mode, points)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return nil
}
