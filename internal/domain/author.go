package domain

type Author struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user"`
	Age          int    `json:"age"`
	Nickname     string `json:"nickname"`
	Insta        string `json:"insta,omitempty"`
	Email        string `json:"email,omitempty"`
	Presentation string `json:"presentation"`
	// Photo is the digest under which the profile photo is stored, if there is one.
	Photo string `json:"profile_photo,omitempty"`
}

// AuthorFields are the editable fields of an author profile. Insta and Email are optional.
type AuthorFields struct {
	Age          int    `json:"age"`
	Nickname     string `json:"nickname"`
	Insta        string `json:"insta"`
	Email        string `json:"email"`
	Presentation string `json:"presentation"`
}
