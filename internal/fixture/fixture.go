// Package fixture loads seed records from JSON files.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avdgaag/publishable/internal/model"
	"github.com/avdgaag/publishable/pkg/publication"
)

// File は seed ファイル全体の構造
type File struct {
	Articles []ArticleRecord `json:"articles"`
	Banners  []BannerRecord  `json:"banners"`
}

// ArticleRecord は seed 上の記事1件。日時は人間が書いたテキストのまま持つ。
type ArticleRecord struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishAt   string `json:"publish_at"`
	UnpublishAt string `json:"unpublish_at"`
}

// BannerRecord は seed 上のバナー1件
type BannerRecord struct {
	Name        string `json:"name"`
	Message     string `json:"message"`
	LinkURL     string `json:"link_url"`
	PublishAt   string `json:"publish_at"`
	UnpublishAt string `json:"unpublish_at"`
}

// Load は path の JSON seed を読み、モデルに変換して返す。
// 日時テキストはフォームと同じ検証を通るため、不正な値は読み込み時に失敗する。
func Load(path string) ([]*model.Article, []*model.Banner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, err
	}

	articles := make([]*model.Article, 0, len(f.Articles))
	for _, rec := range f.Articles {
		a := &model.Article{Slug: rec.Slug, Title: rec.Title, Body: rec.Body}
		if err := applyWindow(&a.Window, rec.PublishAt, rec.UnpublishAt); err != nil {
			return nil, nil, fmt.Errorf("article %q: %w", rec.Slug, err)
		}
		articles = append(articles, a)
	}

	banners := make([]*model.Banner, 0, len(f.Banners))
	for _, rec := range f.Banners {
		b := &model.Banner{Name: rec.Name, Message: rec.Message, LinkURL: rec.LinkURL}
		if err := applyWindow(&b.Window, rec.PublishAt, rec.UnpublishAt); err != nil {
			return nil, nil, fmt.Errorf("banner %q: %w", rec.Name, err)
		}
		banners = append(banners, b)
	}
	return articles, banners, nil
}

func applyWindow(w *publication.Window, publishAt, unpublishAt string) error {
	form := publication.NewForm(w)
	form.SetPublishAt(publishAt)
	form.SetUnpublishAt(unpublishAt)
	if !form.Valid() {
		return fmt.Errorf("invalid publication window: %v", form.Errors())
	}
	return nil
}
