package db

import (
	"context"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

// Interaction is the storage side of the interaction ledger. Every method runs in a single transaction, so that
// the article counters never diverge from the ledger rows.
type Interaction interface {
	// RecordView creates the ledger row with one view, incrementing the article's visuals, or increments the
	// row's view count if it already exists. Returns ErrNotFound if the article does not exist.
	RecordView(ctx context.Context, userId, articleId int64) (domain.Interaction, error)
	// ToggleLike flips the like flag and moves the article's like counter by one in the same direction.
	// Returns ErrNoInteraction if the user has never viewed the article.
	ToggleLike(ctx context.Context, userId, articleId int64) (liked bool, err error)
	// ToggleFavourite flips the favourite flag. Returns ErrNoInteraction if the user has never viewed the article.
	ToggleFavourite(ctx context.Context, userId, articleId int64) (favourite bool, err error)
	GetInteraction(ctx context.Context, userId, articleId int64) (domain.Interaction, error)
	ListFavourites(ctx context.Context, userId int64) ([]domain.Article, error)
}
