package db

import (
	"context"
	"time"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

type Article interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListArticlesByUser(ctx context.Context, userId int64) ([]domain.Article, error)
	ListArticlesByAuthor(ctx context.Context, authorId int64) ([]domain.Article, error)
	GetArticle(ctx context.Context, id int64) (domain.Article, error)
	// GetArticleOwner returns the id of the user that owns the article.
	GetArticleOwner(ctx context.Context, id int64) (int64, error)
	CreateArticle(ctx context.Context, userId, authorId int64, fields domain.ArticleFields, created time.Time) (int64, error)
	// UpdateArticle replaces the editable fields and records a revision holding the patch from the previous text to
	// the new one.
	UpdateArticle(ctx context.Context, id, userId int64, fields domain.ArticleFields, edited time.Time) error
	GetRevisionList(ctx context.Context, articleId int64) ([]domain.Revision, error)
}

type Category interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
}
