package model

import (
	"time"

	"github.com/avdgaag/publishable/pkg/publication"
)

// Article は公開期間付きの記事を表す
type Article struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`

	publication.Window

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
