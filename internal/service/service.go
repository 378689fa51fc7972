package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sidereusnuntius/magazine/internal/db"
	"github.com/sidereusnuntius/magazine/internal/domain"
)

//go:generate mockgen -destination=../mocks/mock_service.go -package=mock_service . Service

var (
	ErrNotFound = db.ErrNotFound
	ErrConflict = db.ErrConflict
	ErrInternal = db.ErrInternal

	ErrInvalidInput = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrInvalidCredentials is returned both for unknown usernames and wrong passwords.
	ErrInvalidCredentials = fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	ErrNotAuthor          = fmt.Errorf("%w: must be a registered author", ErrInvalidInput)
)

type Service interface {
	Account
	Article
	Author
	Ledger
}

type Account interface {
	// AuthenticateUser verifies the credentials and returns the user they belong to. Any failure other than an
	// internal one is reported as ErrInvalidCredentials.
	AuthenticateUser(ctx context.Context, username, password string) (domain.User, error)
	// CreateUser registers a reader or a writer; writers may create their author profile in the same step.
	CreateUser(ctx context.Context, r domain.Registration) (int64, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
}

type Article interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListOwnArticles(ctx context.Context, userId int64) ([]domain.Article, error)
	ListArticlesByAuthor(ctx context.Context, authorId int64) ([]domain.Article, error)
	GetArticle(ctx context.Context, id int64) (domain.Article, error)
	// CreateArticle publishes an article under the user's author profile, failing with ErrNotAuthor if they
	// have none.
	CreateArticle(ctx context.Context, userId int64, fields domain.ArticleFields) (domain.Article, error)
	// UpdateArticle replaces the article's editable fields. Only the owner may do so.
	UpdateArticle(ctx context.Context, userId, articleId int64, fields domain.ArticleFields) (domain.Article, error)
	IsOwner(ctx context.Context, userId, articleId int64) (bool, error)
	GetRevisionList(ctx context.Context, userId, articleId int64) ([]domain.Revision, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type Author interface {
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	GetAuthor(ctx context.Context, id int64) (domain.Author, error)
	GetAuthorByUser(ctx context.Context, userId int64) (domain.Author, error)
	CreateAuthor(ctx context.Context, userId int64, fields domain.AuthorFields) (domain.Author, error)
	// UpdateAuthor and DeleteAuthor are restricted to the user that owns the profile.
	UpdateAuthor(ctx context.Context, userId, authorId int64, fields domain.AuthorFields) (domain.Author, error)
	DeleteAuthor(ctx context.Context, userId, authorId int64) error
	// SetAuthorPhoto stores the image under its digest and links it to the user's author profile.
	SetAuthorPhoto(ctx context.Context, userId int64, content []byte) (domain.Author, error)
	GetPhoto(ctx context.Context, digest string) ([]byte, error)
}

// Ledger is the per user and article record of views, likes and favourites.
type Ledger interface {
	RecordView(ctx context.Context, userId, articleId int64) (domain.Interaction, error)
	ToggleLike(ctx context.Context, userId, articleId int64) (bool, error)
	ToggleFavourite(ctx context.Context, userId, articleId int64) (bool, error)
	IsLiked(ctx context.Context, userId, articleId int64) (bool, error)
	IsFavourite(ctx context.Context, userId, articleId int64) (bool, error)
	// GetInteraction returns the zero interaction when the user has never viewed the article.
	GetInteraction(ctx context.Context, userId, articleId int64) (domain.Interaction, error)
	ListFavourites(ctx context.Context, userId int64) ([]domain.Article, error)
}
