package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
	"github.com/sidereusnuntius/magazine/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser confirms the user's identity. An unknown username and a wrong password are reported with the
// same error, after the same amount of work.
func (s *AppService) AuthenticateUser(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return domain.User{}, service.ErrInvalidCredentials
	}

	account, err := s.DB.GetAuthDataByUsername(ctx, username)
	if errors.Is(err, service.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return domain.User{}, service.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password))
	if err != nil {
		log.Debug().Str("username", username).Msg("failed login attempt")
		return domain.User{}, service.ErrInvalidCredentials
	}
	return account.User, nil
}

func (s *AppService) CreateUser(ctx context.Context, r domain.Registration) (int64, error) {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.Name = strings.TrimSpace(r.Name)
	if r.Type == "" {
		r.Type = domain.Reader
	}
	if r.Author != nil {
		trimAuthor(r.Author)
	}

	if err := validate.SignUpForm(r); err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrInternal, err)
	}

	id, err := s.DB.InsertUser(ctx, domain.Account{
		User: domain.User{
			Username: r.Username,
			Name:     r.Name,
			Type:     r.Type,
		},
		Password: string(hash),
	}, r.Author)
	if err != nil {
		return 0, err
	}

	log.Info().Int64("id", id).Str("username", r.Username).Str("type", string(r.Type)).Msg("user registered")
	return id, nil
}

func (s *AppService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return s.DB.GetUserByID(ctx, id)
}
