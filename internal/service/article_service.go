package service

import (
	"context"

	"github.com/avdgaag/publishable/internal/model"
)

// ArticleService は記事の公開管理に関するビジネスロジックのインターフェース
type ArticleService interface {
	// List は公開状態で絞り込んだ記事一覧を返す。
	// published が nil の場合は公開中のみ返す。
	List(ctx context.Context, published *bool, limit, offset int) ([]*model.Article, error)
	// GetByID はIDで記事を取得する
	GetByID(ctx context.Context, id string) (*model.Article, error)
	// GetBySlug はスラッグで記事を取得する
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)
	// Create は入力を検証して記事を作成する
	Create(ctx context.Context, input ArticleInput) (*model.Article, error)
	// Update は記事の内容（スラッグ・タイトル・本文）を更新する。
	// 公開期間には触れない。期間の変更は Schedule で行う。
	Update(ctx context.Context, id, slug, title, body string) (*model.Article, error)
	// Schedule は公開期間をテキスト入力から設定し直す
	Schedule(ctx context.Context, id string, publishAt, unpublishAt string) (*model.Article, error)
	// Publish は記事を即時公開する
	Publish(ctx context.Context, id string) (*model.Article, error)
	// Unpublish は記事の公開を終了する
	Unpublish(ctx context.Context, id string) (*model.Article, error)
	// Delete は記事を削除する
	Delete(ctx context.Context, id string) error
}

// ArticleInput は記事作成の入力。日時はフォーム由来のテキストのまま受け取る。
type ArticleInput struct {
	Slug        string
	Title       string
	Body        string
	PublishAt   string
	UnpublishAt string
}
