package repository

import (
	"context"
	"time"

	"github.com/avdgaag/publishable/internal/model"
	"github.com/avdgaag/publishable/pkg/publication"
)

// BannerRepository はお知らせバナーの永続化インターフェース
type BannerRepository interface {
	// ListActive は now 時点で表示中のバナー一覧を返す
	ListActive(ctx context.Context, now time.Time) ([]*model.Banner, error)
	// GetByID は ID でバナーを取得する
	GetByID(ctx context.Context, id string) (*model.Banner, error)
	// Create は新しいバナーを作成する。name は一意。
	Create(ctx context.Context, banner *model.Banner) error
	// UpdateWindow は表示期間カラムのみを更新する
	UpdateWindow(ctx context.Context, id string, w publication.Window) error
	// Delete はバナーを物理削除する
	Delete(ctx context.Context, id string) error
}
