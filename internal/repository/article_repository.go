package repository

import (
	"context"
	"time"

	"github.com/avdgaag/publishable/internal/model"
	"github.com/avdgaag/publishable/pkg/publication"
)

// ArticleRepository は記事の永続化インターフェース
type ArticleRepository interface {
	// ListPublished は now 時点で公開中の記事一覧を返す
	ListPublished(ctx context.Context, now time.Time, limit, offset int) ([]*model.Article, error)
	// ListUnpublished は now 時点で非公開の記事一覧を返す。
	// 公開前・公開終了後の両方を含む。
	ListUnpublished(ctx context.Context, now time.Time, limit, offset int) ([]*model.Article, error)
	// GetByID は ID で記事を取得する
	GetByID(ctx context.Context, id string) (*model.Article, error)
	// GetBySlug はスラッグで記事を取得する
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)
	// Create は新しい記事を作成する
	Create(ctx context.Context, article *model.Article) error
	// Update は slug, title, body, updated_at を更新する
	Update(ctx context.Context, article *model.Article) error
	// UpdateWindow は公開期間カラムのみを更新する
	UpdateWindow(ctx context.Context, id string, w publication.Window) error
	// Delete は記事を物理削除する
	Delete(ctx context.Context, id string) error
}
