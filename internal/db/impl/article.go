package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/diff"
	"github.com/sidereusnuntius/magazine/internal/domain"
)

// articleSelect denormalizes an article with its owner's name, its author's nickname and its category's name.
const articleSelect = `SELECT
	a.id,
	a.user_id,
	COALESCE(a.author_id, 0) AS author_id,
	COALESCE(u.name, '') AS author_name,
	COALESCE(au.nickname, '') AS nickname,
	a.title,
	a.extract,
	a.text,
	a.category_id,
	COALESCE(c.name, '') AS category,
	a.visuals,
	a.likes,
	a.comments,
	a.created
FROM articles a
LEFT JOIN users u ON u.id = a.user_id
LEFT JOIN authors au ON au.id = a.author_id
LEFT JOIN categories c ON c.id = a.category_id`

const articleOrder = ` ORDER BY a.created DESC, a.id DESC`

type articleRow struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `db:"author_name"`
	Nickname   string `db:"nickname"`
	Title      string `db:"title"`
	Extract    string `db:"extract"`
	Text       string `db:"text"`
	CategoryID int64  `db:"category_id"`
	Category   string `db:"category"`
	Visuals    int64  `db:"visuals"`
	Likes      int64  `db:"likes"`
	Comments   int64  `db:"comments"`
	Created    int64  `db:"created"`
}

func (r articleRow) article() domain.Article {
	return domain.Article{
		ID:         r.ID,
		UserID:     r.UserID,
		AuthorID:   r.AuthorID,
		Author:     r.AuthorName,
		Nickname:   r.Nickname,
		Date:       domain.Unix(r.Created),
		Title:      r.Title,
		Extract:    r.Extract,
		Text:       r.Text,
		Category:   r.Category,
		CategoryID: r.CategoryID,
		Visuals:    r.Visuals,
		Likes:      r.Likes,
		Comments:   r.Comments,
	}
}

func (d *dbImpl) selectArticles(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	var rows []articleRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, d.HandleError(err)
	}

	articles := make([]domain.Article, len(rows))
	for i, r := range rows {
		articles[i] = r.article()
	}
	return articles, nil
}

func (d *dbImpl) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return d.selectArticles(ctx, articleSelect+articleOrder)
}

func (d *dbImpl) ListArticlesByUser(ctx context.Context, userId int64) ([]domain.Article, error) {
	return d.selectArticles(ctx, articleSelect+` WHERE a.user_id = ?`+articleOrder, userId)
}

func (d *dbImpl) ListArticlesByAuthor(ctx context.Context, authorId int64) ([]domain.Article, error) {
	return d.selectArticles(ctx, articleSelect+` WHERE a.author_id = ?`+articleOrder, authorId)
}

func (d *dbImpl) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	var r articleRow
	if err := d.db.GetContext(ctx, &r, articleSelect+` WHERE a.id = ?`, id); err != nil {
		return domain.Article{}, fmt.Errorf("article %d: %w", id, d.HandleError(err))
	}
	return r.article(), nil
}

func (d *dbImpl) GetArticleOwner(ctx context.Context, id int64) (int64, error) {
	var owner int64
	if err := d.db.GetContext(ctx, &owner, `SELECT user_id FROM articles WHERE id = ?`, id); err != nil {
		return 0, fmt.Errorf("article %d: %w", id, d.HandleError(err))
	}
	return owner, nil
}

// CreateArticle inserts a new article with all of its counters set to zero.
func (d *dbImpl) CreateArticle(ctx context.Context, userId, authorId int64, fields domain.ArticleFields, created time.Time) (int64, error) {
	log.Debug().
		Str("title", fields.Title).
		Int64("author", authorId).
		Msg("creating article")
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO articles (user_id, author_id, title, extract, text, category_id, visuals, likes, comments, created)
		VALUES (?, ?, ?, ?, ?, ?, 0, 0, 0, ?)`,
		userId, authorId, fields.Title, fields.Extract, fields.Text, fields.Category, created.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) UpdateArticle(ctx context.Context, id, userId int64, fields domain.ArticleFields, edited time.Time) error {
	return d.WithTx(ctx, func(tx *sqlx.Tx) error {
		var prev string
		if err := tx.GetContext(ctx, &prev, `SELECT text FROM articles WHERE id = ?`, id); err != nil {
			return fmt.Errorf("article %d: %w", id, d.HandleError(err))
		}

		_, err := tx.ExecContext(ctx,
			`UPDATE articles SET title = ?, extract = ?, text = ?, category_id = ? WHERE id = ?`,
			fields.Title, fields.Extract, fields.Text, fields.Category, id)
		if err != nil {
			return err
		}

		if prev == fields.Text {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO revisions (article_id, user_id, diff, created) VALUES (?, ?, ?, ?)`,
			id, userId, diff.FindPatches(prev, fields.Text), edited.Unix())
		if err != nil {
			return fmt.Errorf("failed to insert revision: %w", err)
		}
		return nil
	})
}

type revisionRow struct {
	ID        int64  `db:"id"`
	ArticleID int64  `db:"article_id"`
	UserID    int64  `db:"user_id"`
	Diff      string `db:"diff"`
	Created   int64  `db:"created"`
}

func (d *dbImpl) GetRevisionList(ctx context.Context, articleId int64) ([]domain.Revision, error) {
	var rows []revisionRow
	err := d.db.SelectContext(ctx, &rows,
		`SELECT id, article_id, COALESCE(user_id, 0) AS user_id, diff, created
		FROM revisions WHERE article_id = ? ORDER BY id`, articleId)
	if err != nil {
		return nil, d.HandleError(err)
	}

	revisions := make([]domain.Revision, len(rows))
	for i, r := range rows {
		revisions[i] = domain.Revision{
			ID:        r.ID,
			ArticleID: r.ArticleID,
			UserID:    r.UserID,
			Diff:      r.Diff,
			Created:   domain.Unix(r.Created),
		}
	}
	return revisions, nil
}

func (d *dbImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := d.db.SelectContext(ctx, &categories, `SELECT id, name FROM categories ORDER BY id`); err != nil {
		return nil, d.HandleError(err)
	}
	return categories, nil
}

func (d *dbImpl) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := d.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)`, id)
	return exists, d.HandleError(err)
}
