package db

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")

	ErrUsernameTaken = fmt.Errorf("%w: username already in use", ErrConflict)
	ErrNicknameTaken = fmt.Errorf("%w: nickname already in use", ErrConflict)
	ErrAuthorExists  = fmt.Errorf("%w: an author profile already exists for this user", ErrConflict)
	ErrNoInteraction = fmt.Errorf("interaction %w", ErrNotFound)
)

type DB interface {
	Account
	Article
	Author
	Category
	Interaction
}
