package impl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/db"
	"github.com/sidereusnuntius/magazine/internal/domain"
)

const authorColumns = `id, user_id, age, nickname, insta, email, presentation, photo`

type authorRow struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"user_id"`
	Age          int            `db:"age"`
	Nickname     string         `db:"nickname"`
	Insta        sql.NullString `db:"insta"`
	Email        sql.NullString `db:"email"`
	Presentation string         `db:"presentation"`
	Photo        sql.NullString `db:"photo"`
}

func (r authorRow) author() domain.Author {
	return domain.Author{
		ID:           r.ID,
		UserID:       r.UserID,
		Age:          r.Age,
		Nickname:     r.Nickname,
		Insta:        r.Insta.String,
		Email:        r.Email.String,
		Presentation: r.Presentation,
		Photo:        r.Photo.String,
	}
}

func (d *dbImpl) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	var rows []authorRow
	err := d.db.SelectContext(ctx, &rows, `SELECT `+authorColumns+` FROM authors ORDER BY nickname`)
	if err != nil {
		return nil, d.HandleError(err)
	}

	authors := make([]domain.Author, len(rows))
	for i, r := range rows {
		authors[i] = r.author()
	}
	return authors, nil
}

func (d *dbImpl) GetAuthor(ctx context.Context, id int64) (domain.Author, error) {
	var r authorRow
	err := d.db.GetContext(ctx, &r, `SELECT `+authorColumns+` FROM authors WHERE id = ?`, id)
	if err != nil {
		return domain.Author{}, fmt.Errorf("author %d: %w", id, d.HandleError(err))
	}
	return r.author(), nil
}

func (d *dbImpl) GetAuthorByUser(ctx context.Context, userId int64) (domain.Author, error) {
	var r authorRow
	err := d.db.GetContext(ctx, &r, `SELECT `+authorColumns+` FROM authors WHERE user_id = ?`, userId)
	if err != nil {
		return domain.Author{}, fmt.Errorf("author of user %d: %w", userId, d.HandleError(err))
	}
	return r.author(), nil
}

func (d *dbImpl) InsertAuthor(ctx context.Context, userId int64, fields domain.AuthorFields) (id int64, err error) {
	log.Debug().
		Int64("user", userId).
		Str("nickname", fields.Nickname).
		Msg("creating author profile")
	err = d.WithTx(ctx, func(tx *sqlx.Tx) error {
		id, err = insertAuthorTx(ctx, tx, userId, fields)
		return err
	})
	return
}

func insertAuthorTx(ctx context.Context, tx *sqlx.Tx, userId int64, fields domain.AuthorFields) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO authors (user_id, age, nickname, insta, email, presentation) VALUES (?, ?, ?, ?, ?, ?)`,
		userId,
		fields.Age,
		fields.Nickname,
		nullString(fields.Insta),
		nullString(fields.Email),
		fields.Presentation,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (d *dbImpl) UpdateAuthor(ctx context.Context, id int64, fields domain.AuthorFields) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE authors SET age = ?, nickname = ?, insta = ?, email = ?, presentation = ? WHERE id = ?`,
		fields.Age,
		fields.Nickname,
		nullString(fields.Insta),
		nullString(fields.Email),
		fields.Presentation,
		id,
	)
	return d.expectOne(res, err, "author", id)
}

func (d *dbImpl) DeleteAuthor(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id)
	return d.expectOne(res, err, "author", id)
}

func (d *dbImpl) SetAuthorPhoto(ctx context.Context, id int64, photo string) error {
	res, err := d.db.ExecContext(ctx, `UPDATE authors SET photo = ? WHERE id = ?`, nullString(photo), id)
	return d.expectOne(res, err, "author", id)
}

// expectOne turns a statement that affected no rows into a not found error.
func (d *dbImpl) expectOne(res sql.Result, err error, entity string, id int64) error {
	if err != nil {
		return d.HandleError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, db.ErrNotFound)
	}
	return nil
}
