package web

import (
	"net/http"

	"github.com/sidereusnuntius/magazine/internal/domain"
)

func ListArticles(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.service.ListArticles(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, articles)
	}
}

func ListOwnArticles(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		articles, err := h.service.ListOwnArticles(r.Context(), u.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, articles)
	}
}

func ListArticlesByAuthor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorId, err := idParam(r, "authorId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		articles, err := h.service.ListArticlesByAuthor(r.Context(), authorId)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, articles)
	}
}

func GetArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		article, err := h.service.GetArticle(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, article)
	}
}

func CreateArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		var fields domain.ArticleFields
		if err := decodeJSON(w, r, &fields); err != nil {
			writeError(w, r, err)
			return
		}

		article, err := h.service.CreateArticle(r.Context(), u.ID, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, article)
	}
}

// UpdateArticle replaces the title, extract, text and category of an article owned by the current user.
func UpdateArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var fields domain.ArticleFields
		if err = decodeJSON(w, r, &fields); err != nil {
			writeError(w, r, err)
			return
		}

		article, err := h.service.UpdateArticle(r.Context(), u.ID, id, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, article)
	}
}

func Ownership(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		isOwner, err := h.service.IsOwner(r.Context(), u.ID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			IsOwner bool `json:"isOwner"`
		}{isOwner})
	}
}

// Revisions lists the edits of an article, each as a patch from the previous text. Only the owner may see them.
func Revisions(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := GetSession(r.Context())
		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		list, err := h.service.GetRevisionList(r.Context(), u.ID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func ListCategories(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.service.ListCategories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}
