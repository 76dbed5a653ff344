package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avdgaag/publishable/internal/model"
	"github.com/avdgaag/publishable/pkg/publication"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBannerRepository は BannerRepository の PostgreSQL 実装
type PgBannerRepository struct {
	pool    *pgxpool.Pool
	policy  publication.Policy
	columns publication.Columns
}

// NewPgBannerRepository は PgBannerRepository を生成する。
// バナーは作成直後から表示されるため、公開デフォルトが有効。
func NewPgBannerRepository(pool *pgxpool.Pool) *PgBannerRepository {
	return &PgBannerRepository{
		pool:    pool,
		policy:  publication.Policy{PublishByDefault: true},
		columns: publication.DefaultColumns,
	}
}

// ListActive は now 時点で表示中のバナー一覧を返す
func (r *PgBannerRepository) ListActive(ctx context.Context, now time.Time) ([]*model.Banner, error) {
	cond, args := r.columns.Published(now, 1)
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, message, COALESCE(link_url, ''), publish_at, unpublish_at, created_at, updated_at
		 FROM banners
		 WHERE `+cond+`
		 ORDER BY created_at DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []*model.Banner
	for rows.Next() {
		var b model.Banner
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Message, &b.LinkURL,
			&b.PublishAt, &b.UnpublishAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		banners = append(banners, &b)
	}
	return banners, rows.Err()
}

// GetByID は ID でバナーを取得する
func (r *PgBannerRepository) GetByID(ctx context.Context, id string) (*model.Banner, error) {
	var b model.Banner
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, message, COALESCE(link_url, ''), publish_at, unpublish_at, created_at, updated_at
		 FROM banners WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Name, &b.Message, &b.LinkURL,
		&b.PublishAt, &b.UnpublishAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create は新しいバナーを作成する。name は一意。
// ID が空の場合は UUID を採番する。publish_at 未指定のバナーは
// 公開デフォルトにより作成時刻から表示開始になる。
func (r *PgBannerRepository) Create(ctx context.Context, banner *model.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO banners (id, name, message, link_url, publish_at, unpublish_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		 RETURNING created_at, updated_at`,
		banner.ID, banner.Name, banner.Message, banner.LinkURL,
		banner.PublishAt, banner.UnpublishAt,
	).Scan(&banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicate
		}
		return err
	}
	if r.policy.ApplyCreationDefault(&banner.Window, banner.CreatedAt) {
		_, err = r.pool.Exec(ctx,
			`UPDATE banners SET publish_at = $1 WHERE id = $2`,
			banner.PublishAt, banner.ID)
	}
	return err
}

// UpdateWindow は表示期間カラムのみを更新する。
// 対象が存在しない場合は ErrNotFound を返す。
func (r *PgBannerRepository) UpdateWindow(ctx context.Context, id string, w publication.Window) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE banners SET publish_at = $1, unpublish_at = $2, updated_at = NOW()
		 WHERE id = $3`,
		w.PublishAt, w.UnpublishAt, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はバナーを物理削除する
func (r *PgBannerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
