package domain

import "time"

type Article struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user"`
	// AuthorID is zero when the author profile that published the article has been deleted.
	AuthorID   int64     `json:"authorId,omitempty"`
	Author     string    `json:"author"`
	Nickname   string    `json:"nickname"`
	Date       time.Time `json:"date"`
	Title      string    `json:"title"`
	Extract    string    `json:"extract"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	CategoryID int64     `json:"categoryId"`
	Visuals    int64     `json:"visuals"`
	Likes      int64     `json:"likes"`
	Comments   int64     `json:"comments"`
}

// ArticleFields are the fields an owner can set. Updates always replace all four.
type ArticleFields struct {
	Title    string `json:"title"`
	Extract  string `json:"extract"`
	Text     string `json:"text"`
	Category int64  `json:"category"`
}

// Revision records one edit of an article's text as a diff-match-patch patch.
type Revision struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article"`
	UserID    int64     `json:"user"`
	Diff      string    `json:"diff"`
	Created   time.Time `json:"created"`
}
