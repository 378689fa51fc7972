package impl

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sidereusnuntius/magazine/internal/domain"
)

type userRow struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Name     string `db:"name"`
	Password string `db:"password"`
	Type     string `db:"type"`
	Game     bool   `db:"game"`
}

func (r userRow) user() domain.User {
	return domain.User{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.Username,
		Type:     domain.UserType(r.Type),
		Game:     r.Game,
	}
}

func (d *dbImpl) InsertUser(ctx context.Context, account domain.Account, author *domain.AuthorFields) (id int64, err error) {
	err = d.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, name, password, type, game) VALUES (?, ?, ?, ?, ?)`,
			account.Username, account.Name, account.Password, string(account.Type), account.Game)
		if err != nil {
			return err
		}

		if id, err = res.LastInsertId(); err != nil {
			return err
		}

		if author == nil {
			return nil
		}
		_, err = insertAuthorTx(ctx, tx, id, *author)
		return err
	})
	if err != nil {
		id = 0
	}
	return
}

func (d *dbImpl) GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error) {
	var u userRow
	err := d.db.GetContext(ctx, &u,
		`SELECT id, username, name, password, type, game FROM users WHERE username = ?`, username)
	if err != nil {
		return domain.Account{}, d.HandleError(err)
	}

	return domain.Account{
		User:     u.user(),
		Password: u.Password,
	}, nil
}

func (d *dbImpl) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var u userRow
	err := d.db.GetContext(ctx, &u,
		`SELECT id, username, name, password, type, game FROM users WHERE id = ?`, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %d: %w", id, d.HandleError(err))
	}
	return u.user(), nil
}
