package service

import (
	"context"
	"time"

	"github.com/avdgaag/publishable/internal/model"
	"github.com/avdgaag/publishable/internal/repository"
	"github.com/avdgaag/publishable/pkg/publication"
)

// BannerInput はバナー作成の入力
type BannerInput struct {
	Name        string
	Message     string
	LinkURL     string
	PublishAt   string
	UnpublishAt string
}

// BannerService はお知らせバナーの表示管理を行う
type BannerService struct {
	repo repository.BannerRepository
	now  func() time.Time
}

// NewBannerService は BannerService を生成する。
// now が nil の場合は time.Now を使う。
func NewBannerService(repo repository.BannerRepository, now func() time.Time) *BannerService {
	if now == nil {
		now = time.Now
	}
	return &BannerService{repo: repo, now: now}
}

// Active は現在表示中のバナー一覧を返す
func (s *BannerService) Active(ctx context.Context) ([]*model.Banner, error) {
	return s.repo.ListActive(ctx, s.now())
}

// Create は入力を検証してバナーを作成する。
// 日時テキストが不正な場合は *ValidationError を返し、リポジトリには触れない。
func (s *BannerService) Create(ctx context.Context, input BannerInput) (*model.Banner, error) {
	banner := &model.Banner{Name: input.Name, Message: input.Message, LinkURL: input.LinkURL}
	form := publication.NewForm(&banner.Window)
	form.SetPublishAt(input.PublishAt)
	form.SetUnpublishAt(input.UnpublishAt)
	if !form.Valid() {
		return nil, &ValidationError{Fields: form.Errors()}
	}
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Publish はバナーを再表示する。表示中なら書き込みを行わない。
func (s *BannerService) Publish(ctx context.Context, id string) (*model.Banner, error) {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !banner.Publish(s.now()) {
		return banner, nil
	}
	if err := s.repo.UpdateWindow(ctx, id, banner.Window); err != nil {
		return nil, err
	}
	return banner, nil
}

// Unpublish はバナーの表示を終了する。非表示なら書き込みを行わない。
func (s *BannerService) Unpublish(ctx context.Context, id string) (*model.Banner, error) {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !banner.Unpublish(s.now()) {
		return banner, nil
	}
	if err := s.repo.UpdateWindow(ctx, id, banner.Window); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete はバナーを削除する
func (s *BannerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
