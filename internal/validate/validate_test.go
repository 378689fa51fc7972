package validate

import (
	"strings"
	"testing"

	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSignUpForm(t *testing.T) {
	valid := domain.Registration{
		Username: "alice",
		Name:     "Alice",
		Password: "secret1",
		Type:     domain.Reader,
	}
	author := &domain.AuthorFields{Age: 30, Nickname: "al", Presentation: "hi"}

	cases := []struct {
		name  string
		edit  func(r *domain.Registration)
		valid bool
	}{
		{"valid reader", func(r *domain.Registration) {}, true},
		{"valid writer with profile", func(r *domain.Registration) { r.Type = domain.Writer; r.Author = author }, true},
		{"reader with profile", func(r *domain.Registration) { r.Author = author }, false},
		{"admin", func(r *domain.Registration) { r.Type = domain.Admin }, false},
		{"unknown type", func(r *domain.Registration) { r.Type = "editor" }, false},
		{"empty username", func(r *domain.Registration) { r.Username = "" }, false},
		{"username with space", func(r *domain.Registration) { r.Username = "al ice" }, false},
		{"empty name", func(r *domain.Registration) { r.Name = "  " }, false},
		{"short password", func(r *domain.Registration) { r.Password = "12345" }, false},
		{"long password", func(r *domain.Registration) { r.Password = strings.Repeat("a", 73) }, false},
		{"invalid profile", func(r *domain.Registration) {
			r.Type = domain.Writer
			r.Author = &domain.AuthorFields{Age: 0, Nickname: "al", Presentation: "hi"}
		}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := valid
			c.edit(&r)
			err := SignUpForm(r)
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestArticleForm(t *testing.T) {
	valid := domain.ArticleFields{Title: "t", Extract: "e", Text: "x", Category: 1}
	assert.NoError(t, ArticleForm(valid))

	f := valid
	f.Extract = strings.Repeat("é", MaxExtractLen)
	assert.NoError(t, ArticleForm(f), "extract length is counted in characters")

	f.Extract += "é"
	assert.Error(t, ArticleForm(f))

	for _, edit := range []func(*domain.ArticleFields){
		func(f *domain.ArticleFields) { f.Title = "" },
		func(f *domain.ArticleFields) { f.Extract = "" },
		func(f *domain.ArticleFields) { f.Text = " " },
		func(f *domain.ArticleFields) { f.Category = 0 },
	} {
		f := valid
		edit(&f)
		assert.Error(t, ArticleForm(f))
	}
}

func TestAuthorForm(t *testing.T) {
	valid := domain.AuthorFields{Age: 30, Nickname: "nick", Presentation: "about me"}
	assert.NoError(t, AuthorForm(valid))

	f := valid
	f.Email = "nick@example.com"
	assert.NoError(t, AuthorForm(f))
	f.Email = "not an email"
	assert.Error(t, AuthorForm(f))

	f = valid
	f.Age = MaxAge + 1
	assert.Error(t, AuthorForm(f))

	f = valid
	f.Nickname = ""
	assert.Error(t, AuthorForm(f))
}
