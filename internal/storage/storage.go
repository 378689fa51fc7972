package storage

import (
	"errors"
	"io"
)

var (
	ErrNotDir        = errors.New("given root is not a directory")
	ErrInternal      = errors.New("internal error")
	ErrCreate        = errors.New("failed to create file")
	ErrAlreadyExists = errors.New("filename already exists")
	ErrNotExist      = errors.New("file does not exist")
	ErrInvalidName   = errors.New("invalid file name")
)

// Storage keeps opaque blobs, such as the authors' profile photos, under flat names.
type Storage interface {
	Open(name string) ([]byte, error)
	Create(content io.Reader, name string) error
	Delete(name string) error
}
