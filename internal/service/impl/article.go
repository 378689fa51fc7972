package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
	"github.com/sidereusnuntius/magazine/internal/validate"
)

func (s *AppService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return s.DB.ListArticles(ctx)
}

func (s *AppService) ListOwnArticles(ctx context.Context, userId int64) ([]domain.Article, error) {
	return s.DB.ListArticlesByUser(ctx, userId)
}

func (s *AppService) ListArticlesByAuthor(ctx context.Context, authorId int64) ([]domain.Article, error) {
	if _, err := s.DB.GetAuthor(ctx, authorId); err != nil {
		return nil, err
	}
	return s.DB.ListArticlesByAuthor(ctx, authorId)
}

func (s *AppService) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	return s.DB.GetArticle(ctx, id)
}

func (s *AppService) CreateArticle(ctx context.Context, userId int64, fields domain.ArticleFields) (domain.Article, error) {
	author, err := s.DB.GetAuthorByUser(ctx, userId)
	if errors.Is(err, service.ErrNotFound) {
		return domain.Article{}, service.ErrNotAuthor
	}
	if err != nil {
		return domain.Article{}, err
	}

	fields = trimArticle(fields)
	if err = s.checkArticle(ctx, fields); err != nil {
		return domain.Article{}, err
	}

	id, err := s.DB.CreateArticle(ctx, userId, author.ID, fields, s.now())
	if err != nil {
		return domain.Article{}, err
	}
	return s.DB.GetArticle(ctx, id)
}

// UpdateArticle checks, in order, that the article exists, that the user owns it and that the new fields are
// valid. Nothing is written unless all of them hold.
func (s *AppService) UpdateArticle(ctx context.Context, userId, articleId int64, fields domain.ArticleFields) (domain.Article, error) {
	if err := s.checkOwner(ctx, userId, articleId); err != nil {
		return domain.Article{}, err
	}

	fields = trimArticle(fields)
	if err := s.checkArticle(ctx, fields); err != nil {
		return domain.Article{}, err
	}

	if err := s.DB.UpdateArticle(ctx, articleId, userId, fields, s.now()); err != nil {
		return domain.Article{}, err
	}
	return s.DB.GetArticle(ctx, articleId)
}

func (s *AppService) IsOwner(ctx context.Context, userId, articleId int64) (bool, error) {
	owner, err := s.DB.GetArticleOwner(ctx, articleId)
	if err != nil {
		return false, err
	}
	return owner == userId, nil
}

func (s *AppService) GetRevisionList(ctx context.Context, userId, articleId int64) ([]domain.Revision, error) {
	if err := s.checkOwner(ctx, userId, articleId); err != nil {
		return nil, err
	}
	return s.DB.GetRevisionList(ctx, articleId)
}

func (s *AppService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.DB.ListCategories(ctx)
}

func (s *AppService) checkOwner(ctx context.Context, userId, articleId int64) error {
	isOwner, err := s.IsOwner(ctx, userId, articleId)
	if err != nil {
		return err
	}
	if !isOwner {
		return fmt.Errorf("%w: user %d does not own article %d", service.ErrForbidden, userId, articleId)
	}
	return nil
}

func (s *AppService) checkArticle(ctx context.Context, fields domain.ArticleFields) error {
	if err := validate.ArticleForm(fields); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	exists, err := s.DB.CategoryExists(ctx, fields.Category)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: unknown category %d", service.ErrInvalidInput, fields.Category)
	}
	return nil
}

func trimArticle(f domain.ArticleFields) domain.ArticleFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Extract = strings.TrimSpace(f.Extract)
	return f
}
