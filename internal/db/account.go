package db

import (
	"context"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

type Account interface {
	// InsertUser persists the account, whose password must already be hashed. If author is not nil, the author
	// profile is created in the same transaction. Returns ErrUsernameTaken or ErrNicknameTaken on collisions.
	InsertUser(ctx context.Context, account domain.Account, author *domain.AuthorFields) (id int64, err error)
	GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error)
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
}
