package store

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// RecipeStore is the write side of the pipeline: named JSON documents in a
// single output directory.
type RecipeStore interface {
	// List returns the recipe files currently in the output directory.
	List() ([]string, error)

	Contains(name string) (bool, error)

	Store(name string, content io.Reader) error

	// Path returns the absolute location a document is (or would be) stored at.
	Path(name string) string
}

// FileStore stores recipe documents as plain files in an output directory,
// which is created on first write.
type FileStore struct {
	outDir string
}

func NewFileStore(outDir string) *FileStore {
	return &FileStore{
		outDir: outDir,
	}
}

func (fs *FileStore) Path(name string) string {
	return filepath.Join(fs.outDir, name)
}

// List returns the recipe JSON files in the output directory. A missing
// directory is treated as empty, since nothing was ever stored there.
func (fs *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(fs.outDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read output directory %s", fs.outDir)
	}

	files := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func (fs *FileStore) Contains(name string) (bool, error) {
	_, err := os.Stat(fs.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (fs *FileStore) Store(name string, content io.Reader) error {
	if err := os.MkdirAll(fs.outDir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", fs.outDir)
	}

	file, err := os.Create(fs.Path(name))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", fs.Path(name))
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return errors.Wrapf(err, "failed to write %s", fs.Path(name))
	}
	return nil
}
