package filestore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/storage"
)

// FileStore keeps every blob as a file directly under Root.
type FileStore struct {
	Root string
}

func New(root string) (storage.Storage, error) {
	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			return nil, storage.ErrNotDir
		}
		return &FileStore{Root: root}, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, 0o755)
	}
	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		return nil, storage.ErrInternal
	}

	return &FileStore{Root: root}, nil
}

// path resolves name under the root, refusing anything that is not a plain file name.
func (s *FileStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", storage.ErrInvalidName
	}
	return filepath.Join(s.Root, name), nil
}

func (s *FileStore) Open(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Str("path", path).Msg("failed to read file")
		return nil, storage.ErrInternal
	}
	return content, nil
}

func (s *FileStore) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Msg("file deletion error")
		return storage.ErrInternal
	}
	return nil
}

// Create writes content to a temporary file which is then renamed to name, so that a reader never observes a
// partially written file.
func (s *FileStore) Create(content io.Reader, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		return storage.ErrAlreadyExists
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Error().Err(err).Msg("unknown filesystem error")
		return storage.ErrInternal
	}

	tmp, err := os.CreateTemp(s.Root, ".upload-*")
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to create temporary file")
		return storage.ErrCreate
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, content); err != nil {
		tmp.Close()
		log.Error().Err(err).Msg("failed to copy from reader")
		return storage.ErrInternal
	}
	if err = tmp.Close(); err != nil {
		log.Error().Err(err).Msg("failed to flush file")
		return storage.ErrInternal
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to move file into place")
		return storage.ErrCreate
	}
	return nil
}
