package model

import (
	"time"

	"github.com/avdgaag/publishable/pkg/publication"
)

// Banner はサイト内に期間限定で表示するお知らせバナーを表す
type Banner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
	LinkURL string `json:"link_url,omitempty"`

	publication.Window

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
