package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)

	r.Route(ApiRoute, func(r chi.Router) {
		r.Use(SessionMiddleware(h))

		r.Post("/login", Login(h))
		r.With(authenticated).Get("/login/current", CurrentUser(h))
		r.Delete("/login/current", Logout(h))
		r.Post("/register", Register(h))

		r.Get("/categories", ListCategories(h))

		r.Route("/articles", func(r chi.Router) {
			r.Get("/public", ListArticles(h))
			r.With(authenticated).Get("/private", ListArticles(h))
			r.With(authenticated).Get("/own", ListOwnArticles(h))
			r.With(authenticated).Post("/own/new", CreateArticle(h))
			r.Get("/author/{authorId}", ListArticlesByAuthor(h))

			r.Get("/{id}", GetArticle(h))
			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Put("/{id}", UpdateArticle(h))
				r.Get("/{id}/ownership", Ownership(h))
				r.Get("/{id}/revisions", Revisions(h))
				r.Post("/{id}/visuals", RecordView(h))
				r.Post("/{id}/likes", ToggleLike(h))
			})
		})

		r.Route("/favourites", func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/", ListFavourites(h))
			r.Post("/{articleId}", ToggleFavourite(h))
			r.Get("/{articleId}/check", CheckInteraction(h))
		})

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", ListAuthors(h))
			r.With(authenticated).Post("/", CreateAuthor(h))
			r.With(authenticated).Get("/me", MyAuthor(h))
			r.With(authenticated).Post("/me/photo", UploadPhoto(h))
			r.Get("/user/{userId}", GetAuthorByUser(h))
			r.Get("/{id}", GetAuthor(h))
			r.With(authenticated).Put("/{id}", UpdateAuthor(h))
			r.With(authenticated).Delete("/{id}", DeleteAuthor(h))
		})

		r.Get("/photos/{digest}", GetPhoto(h))
	})
}
