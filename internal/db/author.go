package db

import (
	"context"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

type Author interface {
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	GetAuthor(ctx context.Context, id int64) (domain.Author, error)
	GetAuthorByUser(ctx context.Context, userId int64) (domain.Author, error)
	InsertAuthor(ctx context.Context, userId int64, fields domain.AuthorFields) (int64, error)
	UpdateAuthor(ctx context.Context, id int64, fields domain.AuthorFields) error
	DeleteAuthor(ctx context.Context, id int64) error
	SetAuthorPhoto(ctx context.Context, id int64, photo string) error
}
