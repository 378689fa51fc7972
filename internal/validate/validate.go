package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

const (
	MinPasswordLen     = 6
	MaxPasswordLen     = 72
	MaxUsernameLen     = 64
	MaxNameLen         = 100
	MaxTitleLen        = 200
	MaxExtractLen      = 330
	MaxNicknameLen     = 64
	MaxPresentationLen = 2000
	MinAge             = 1
	MaxAge             = 120
)

// SignUpForm validates a registration. The author profile is only checked when present.
func SignUpForm(r domain.Registration) error {
	errs := []error{
		Username(r.Username),
		required("name", r.Name, MaxNameLen),
		Password(r.Password),
		UserType(r.Type),
	}

	if r.Author != nil {
		if r.Type != domain.Writer {
			errs = append(errs, errors.New("only writers can have an author profile"))
		} else {
			errs = append(errs, AuthorForm(*r.Author))
		}
	}

	return errors.Join(errs...)
}

// Password bounds the length in bytes, since bcrypt ignores anything past the 72nd byte.
func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	if strings.ContainsAny(username, " \t\n") {
		return errors.New("username must not contain whitespace")
	}
	return nil
}

// UserType accepts the account types that can be chosen at registration. Admins are never self registered.
func UserType(t domain.UserType) error {
	switch t {
	case domain.Reader, domain.Writer:
		return nil
	case domain.Admin:
		return errors.New("admin accounts cannot be registered")
	default:
		return fmt.Errorf("unknown account type %q", t)
	}
}

func Extract(extract string) error {
	if extract == "" {
		return errors.New("empty extract")
	}
	if utf8.RuneCountInString(extract) > MaxExtractLen {
		return fmt.Errorf("extract too long; max %d characters", MaxExtractLen)
	}
	return nil
}

// ArticleForm requires all four editable fields, since partial updates are not supported.
func ArticleForm(f domain.ArticleFields) error {
	errs := []error{
		required("title", f.Title, MaxTitleLen),
		Extract(f.Extract),
	}
	if strings.TrimSpace(f.Text) == "" {
		errs = append(errs, errors.New("empty text"))
	}
	if f.Category <= 0 {
		errs = append(errs, errors.New("missing category"))
	}
	return errors.Join(errs...)
}

func AuthorForm(f domain.AuthorFields) error {
	errs := []error{
		required("nickname", f.Nickname, MaxNicknameLen),
		required("presentation", f.Presentation, MaxPresentationLen),
	}
	if f.Age < MinAge || f.Age > MaxAge {
		errs = append(errs, fmt.Errorf("age must be between %d and %d", MinAge, MaxAge))
	}
	if f.Email != "" {
		errs = append(errs, Email(f.Email))
	}
	return errors.Join(errs...)
}

func required(field, value string, max int) error {
	switch l := utf8.RuneCountInString(strings.TrimSpace(value)); {
	case l == 0:
		return fmt.Errorf("empty %s", field)
	case l > max:
		return fmt.Errorf("%s too long; max %d characters", field, max)
	}
	return nil
}
