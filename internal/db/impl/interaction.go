package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sidereusnuntius/magazine/internal/db"
	"github.com/sidereusnuntius/magazine/internal/domain"
)

type interactionRow struct {
	UserID    int64 `db:"user_id"`
	ArticleID int64 `db:"article_id"`
	Views     int64 `db:"views"`
	Liked     bool  `db:"liked"`
	Favourite bool  `db:"favourite"`
	Commented bool  `db:"commented"`
}

func (r interactionRow) interaction() domain.Interaction {
	return domain.Interaction(r)
}

const interactionColumns = `user_id, article_id, views, liked, favourite, commented`

// RecordView upserts the ledger row. Only the first view of a user moves the article's visuals.
func (d *dbImpl) RecordView(ctx context.Context, userId, articleId int64) (i domain.Interaction, err error) {
	err = d.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := articleExists(ctx, tx, articleId); err != nil {
			return err
		}

		var views int64
		err := tx.GetContext(ctx, &views,
			`INSERT INTO interactions (user_id, article_id, views) VALUES (?, ?, 1)
			ON CONFLICT (user_id, article_id) DO UPDATE SET views = views + 1
			RETURNING views`,
			userId, articleId)
		if err != nil {
			return err
		}

		if views == 1 {
			if _, err = tx.ExecContext(ctx, `UPDATE articles SET visuals = visuals + 1 WHERE id = ?`, articleId); err != nil {
				return err
			}
		}

		var r interactionRow
		err = tx.GetContext(ctx, &r,
			`SELECT `+interactionColumns+` FROM interactions WHERE user_id = ? AND article_id = ?`,
			userId, articleId)
		i = r.interaction()
		return err
	})
	return
}

func (d *dbImpl) ToggleLike(ctx context.Context, userId, articleId int64) (liked bool, err error) {
	err = d.WithTx(ctx, func(tx *sqlx.Tx) (err error) {
		if liked, err = flip(ctx, tx, "liked", userId, articleId); err != nil {
			return err
		}

		delta := -1
		if liked {
			delta = 1
		}
		_, err = tx.ExecContext(ctx, `UPDATE articles SET likes = likes + ? WHERE id = ?`, delta, articleId)
		return err
	})
	return
}

func (d *dbImpl) ToggleFavourite(ctx context.Context, userId, articleId int64) (favourite bool, err error) {
	err = d.WithTx(ctx, func(tx *sqlx.Tx) (err error) {
		favourite, err = flip(ctx, tx, "favourite", userId, articleId)
		return err
	})
	return
}

// flip inverts a 0/1 column of the ledger row in a single statement.
func flip(ctx context.Context, tx *sqlx.Tx, column string, userId, articleId int64) (bool, error) {
	var value bool
	query := fmt.Sprintf(
		`UPDATE interactions SET %[1]s = 1 - %[1]s WHERE user_id = ? AND article_id = ? RETURNING %[1]s`,
		column,
	)
	err := tx.GetContext(ctx, &value, query, userId, articleId)
	if errors.Is(err, sql.ErrNoRows) {
		return false, db.ErrNoInteraction
	}
	return value, err
}

func articleExists(ctx context.Context, tx *sqlx.Tx, articleId int64) error {
	var exists bool
	err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)`, articleId)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("article %d: %w", articleId, db.ErrNotFound)
	}
	return nil
}

func (d *dbImpl) GetInteraction(ctx context.Context, userId, articleId int64) (domain.Interaction, error) {
	var r interactionRow
	err := d.db.GetContext(ctx, &r,
		`SELECT `+interactionColumns+` FROM interactions WHERE user_id = ? AND article_id = ?`,
		userId, articleId)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Interaction{}, db.ErrNoInteraction
	}
	if err != nil {
		return domain.Interaction{}, d.HandleError(err)
	}
	return r.interaction(), nil
}

func (d *dbImpl) ListFavourites(ctx context.Context, userId int64) ([]domain.Article, error) {
	return d.selectArticles(ctx,
		articleSelect+` JOIN interactions i ON i.article_id = a.id
		WHERE i.user_id = ? AND i.favourite = 1`+articleOrder,
		userId)
}
