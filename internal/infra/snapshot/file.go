package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"mercado-tracker/internal/pkg/errs"
)

// File persists the snapshot as one JSON document on disk. Writes go through
// a temp file plus rename so a crash mid-write never leaves a torn document.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) (*Data, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to read snapshot file")
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errs.Wrap(err, "failed to decode snapshot file")
	}
	return &data, nil
}

func (f *File) Save(_ context.Context, data *Data) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode snapshot")
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return errs.Wrap(err, "failed to create temp snapshot file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to write temp snapshot file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close temp snapshot file")
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace snapshot file")
	}
	return nil
}
