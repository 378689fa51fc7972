package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
	"github.com/sidereusnuntius/magazine/internal/validate"
)

func (s *AppService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.DB.ListAuthors(ctx)
}

func (s *AppService) GetAuthor(ctx context.Context, id int64) (domain.Author, error) {
	return s.DB.GetAuthor(ctx, id)
}

func (s *AppService) GetAuthorByUser(ctx context.Context, userId int64) (domain.Author, error) {
	return s.DB.GetAuthorByUser(ctx, userId)
}

// CreateAuthor creates the author profile of a writer. Each user has at most one.
func (s *AppService) CreateAuthor(ctx context.Context, userId int64, fields domain.AuthorFields) (domain.Author, error) {
	user, err := s.DB.GetUserByID(ctx, userId)
	if err != nil {
		return domain.Author{}, err
	}
	if user.Type != domain.Writer {
		return domain.Author{}, fmt.Errorf("%w: only writers can have an author profile", service.ErrForbidden)
	}

	trimAuthor(&fields)
	if err = validate.AuthorForm(fields); err != nil {
		return domain.Author{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	id, err := s.DB.InsertAuthor(ctx, userId, fields)
	if err != nil {
		return domain.Author{}, err
	}
	return s.DB.GetAuthor(ctx, id)
}

func (s *AppService) UpdateAuthor(ctx context.Context, userId, authorId int64, fields domain.AuthorFields) (domain.Author, error) {
	if err := s.checkAuthorOwner(ctx, userId, authorId); err != nil {
		return domain.Author{}, err
	}

	trimAuthor(&fields)
	if err := validate.AuthorForm(fields); err != nil {
		return domain.Author{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	if err := s.DB.UpdateAuthor(ctx, authorId, fields); err != nil {
		return domain.Author{}, err
	}
	return s.DB.GetAuthor(ctx, authorId)
}

// DeleteAuthor removes the author profile. The articles published under it remain, detached from the profile.
func (s *AppService) DeleteAuthor(ctx context.Context, userId, authorId int64) error {
	if err := s.checkAuthorOwner(ctx, userId, authorId); err != nil {
		return err
	}

	if err := s.DB.DeleteAuthor(ctx, authorId); err != nil {
		return err
	}
	log.Info().Int64("author", authorId).Int64("user", userId).Msg("author profile deleted")
	return nil
}

func (s *AppService) checkAuthorOwner(ctx context.Context, userId, authorId int64) error {
	author, err := s.DB.GetAuthor(ctx, authorId)
	if err != nil {
		return err
	}
	if author.UserID != userId {
		return fmt.Errorf("%w: user %d does not own author %d", service.ErrForbidden, userId, authorId)
	}
	return nil
}

func trimAuthor(f *domain.AuthorFields) {
	f.Nickname = strings.TrimSpace(f.Nickname)
	f.Insta = strings.TrimSpace(f.Insta)
	f.Email = strings.TrimSpace(f.Email)
	f.Presentation = strings.TrimSpace(f.Presentation)
}
