package models

// Post is the only resource the API serves. ID is assigned by the store.
type Post struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Body  string `db:"body" json:"body"`
}
