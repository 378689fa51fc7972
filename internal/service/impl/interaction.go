package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
)

func ledgerKey(userId, articleId int64) string {
	return fmt.Sprintf("%d:%d", userId, articleId)
}

// RecordView counts a view of the article by the user. Only the user's first view moves the article's visuals.
func (s *AppService) RecordView(ctx context.Context, userId, articleId int64) (domain.Interaction, error) {
	unlock := s.locks.Lock(ledgerKey(userId, articleId))
	defer unlock()

	return s.DB.RecordView(ctx, userId, articleId)
}

// ToggleLike flips the like flag, moving the article's likes in the same direction. The user must have viewed the
// article first.
func (s *AppService) ToggleLike(ctx context.Context, userId, articleId int64) (bool, error) {
	unlock := s.locks.Lock(ledgerKey(userId, articleId))
	defer unlock()

	return s.DB.ToggleLike(ctx, userId, articleId)
}

func (s *AppService) ToggleFavourite(ctx context.Context, userId, articleId int64) (bool, error) {
	unlock := s.locks.Lock(ledgerKey(userId, articleId))
	defer unlock()

	return s.DB.ToggleFavourite(ctx, userId, articleId)
}

func (s *AppService) IsLiked(ctx context.Context, userId, articleId int64) (bool, error) {
	i, err := s.GetInteraction(ctx, userId, articleId)
	return i.Liked, err
}

func (s *AppService) IsFavourite(ctx context.Context, userId, articleId int64) (bool, error) {
	i, err := s.GetInteraction(ctx, userId, articleId)
	return i.Favourite, err
}

func (s *AppService) GetInteraction(ctx context.Context, userId, articleId int64) (domain.Interaction, error) {
	i, err := s.DB.GetInteraction(ctx, userId, articleId)
	if errors.Is(err, service.ErrNotFound) {
		return domain.Interaction{UserID: userId, ArticleID: articleId}, nil
	}
	return i, err
}

func (s *AppService) ListFavourites(ctx context.Context, userId int64) ([]domain.Article, error) {
	return s.DB.ListFavourites(ctx, userId)
}
