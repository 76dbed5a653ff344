package service

import (
	"context"
	"time"

	"github.com/avdgaag/publishable/internal/model"
	"github.com/avdgaag/publishable/internal/repository"
	"github.com/avdgaag/publishable/pkg/publication"
)

// ArticleServiceImpl は ArticleService の実装
type ArticleServiceImpl struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

// NewArticleService は ArticleServiceImpl を生成する。
// now が nil の場合は time.Now を使う。
func NewArticleService(repo repository.ArticleRepository, now func() time.Time) ArticleService {
	if now == nil {
		now = time.Now
	}
	return &ArticleServiceImpl{repo: repo, now: now}
}

// List は公開状態で絞り込んだ記事一覧を返す。
// published が nil の場合は公開中のみ返す。
func (s *ArticleServiceImpl) List(ctx context.Context, published *bool, limit, offset int) ([]*model.Article, error) {
	if published == nil || *published {
		return s.repo.ListPublished(ctx, s.now(), limit, offset)
	}
	return s.repo.ListUnpublished(ctx, s.now(), limit, offset)
}

// GetByID はIDで記事を取得する
func (s *ArticleServiceImpl) GetByID(ctx context.Context, id string) (*model.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug はスラッグで記事を取得する
func (s *ArticleServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create は入力を検証して記事を作成する。
// 日時テキストが不正な場合は *ValidationError を返し、リポジトリには触れない。
func (s *ArticleServiceImpl) Create(ctx context.Context, input ArticleInput) (*model.Article, error) {
	article := &model.Article{Slug: input.Slug, Title: input.Title, Body: input.Body}
	form := publication.NewForm(&article.Window)
	form.SetPublishAt(input.PublishAt)
	form.SetUnpublishAt(input.UnpublishAt)
	if !form.Valid() {
		return nil, &ValidationError{Fields: form.Errors()}
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Update は記事の内容（スラッグ・タイトル・本文）を更新する。
// 公開期間には触れない。
func (s *ArticleServiceImpl) Update(ctx context.Context, id, slug, title, body string) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Slug = slug
	article.Title = title
	article.Body = body
	article.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Schedule は公開期間をテキスト入力から設定し直す。
// 空文字列は該当側の境界を外す。
func (s *ArticleServiceImpl) Schedule(ctx context.Context, id string, publishAt, unpublishAt string) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	form := publication.NewForm(&article.Window)
	form.SetPublishAt(publishAt)
	form.SetUnpublishAt(unpublishAt)
	if !form.Valid() {
		return nil, &ValidationError{Fields: form.Errors()}
	}
	if err := s.repo.UpdateWindow(ctx, id, article.Window); err != nil {
		return nil, err
	}
	return article, nil
}

// Publish は記事を即時公開する。すでに公開中なら書き込みを行わない。
func (s *ArticleServiceImpl) Publish(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.Publish(s.now()) {
		return article, nil
	}
	if err := s.repo.UpdateWindow(ctx, id, article.Window); err != nil {
		return nil, err
	}
	return article, nil
}

// Unpublish は記事の公開を終了する。すでに非公開なら書き込みを行わない。
func (s *ArticleServiceImpl) Unpublish(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.Unpublish(s.now()) {
		return article, nil
	}
	if err := s.repo.UpdateWindow(ctx, id, article.Window); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete は記事を削除する
func (s *ArticleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
