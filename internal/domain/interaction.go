package domain

// Interaction is the ledger row of a user and an article. A missing row is equivalent to the zero value.
type Interaction struct {
	UserID    int64 `json:"user"`
	ArticleID int64 `json:"article"`
	Views     int64 `json:"views"`
	Liked     bool  `json:"isLiked"`
	Favourite bool  `json:"isFavourite"`
	Commented bool  `json:"commented"`
}
