package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoFile is returned when an operation that requires an upload received
// no file part.
var ErrNoFile = errors.New("no file uploaded")

// Saver writes uploaded images into the public file area and hands back the
// filename the recipe row stores. There is no transaction between the file
// write and the database write; a crash in between can orphan a file.
type Saver struct {
	dir   string
	namer Namer
}

func NewSaver(dir string, namer Namer) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir, namer: namer}, nil
}

// Dir returns the directory uploads are written to.
func (s *Saver) Dir() string {
	return s.dir
}

// Save streams the upload to disk and returns the stored filename.
func (s *Saver) Save(file io.Reader, originalName string) (string, error) {
	name := s.namer.Name(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return name, nil
}
