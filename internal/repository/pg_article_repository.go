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

// PgArticleRepository は ArticleRepository の PostgreSQL 実装
type PgArticleRepository struct {
	pool    *pgxpool.Pool
	policy  publication.Policy
	columns publication.Columns
}

// NewPgArticleRepository は PgArticleRepository を生成する。
// 記事の公開開始はフォームで明示的に指定するため、公開デフォルトは無効。
func NewPgArticleRepository(pool *pgxpool.Pool) *PgArticleRepository {
	return &PgArticleRepository{
		pool:    pool,
		policy:  publication.Policy{},
		columns: publication.DefaultColumns,
	}
}

const articleSelectCols = `id, slug, title, body, publish_at, unpublish_at, created_at, updated_at`

func scanArticle(scan func(...any) error) (*model.Article, error) {
	a := &model.Article{}
	return a, scan(
		&a.ID, &a.Slug, &a.Title, &a.Body,
		&a.PublishAt, &a.UnpublishAt, &a.CreatedAt, &a.UpdatedAt,
	)
}

// ListPublished は now 時点で公開中の記事一覧を返す
func (r *PgArticleRepository) ListPublished(ctx context.Context, now time.Time, limit, offset int) ([]*model.Article, error) {
	cond, args := r.columns.Published(now, 1)
	return r.list(ctx, cond, append(args, limit, offset))
}

// ListUnpublished は now 時点で非公開の記事一覧を返す
func (r *PgArticleRepository) ListUnpublished(ctx context.Context, now time.Time, limit, offset int) ([]*model.Article, error) {
	cond, args := r.columns.Unpublished(now, 1)
	return r.list(ctx, cond, append(args, limit, offset))
}

// list は公開状態の条件句を受け取り記事を列挙する。
// 条件句は $1 を参照し、LIMIT/OFFSET が $2, $3 を使う。
func (r *PgArticleRepository) list(ctx context.Context, cond string, args []any) ([]*model.Article, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+articleSelectCols+`
		 FROM articles
		 WHERE `+cond+`
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		a, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID は ID で記事を取得する
func (r *PgArticleRepository) GetByID(ctx context.Context, id string) (*model.Article, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+articleSelectCols+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetBySlug はスラッグで記事を取得する
func (r *PgArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+articleSelectCols+` FROM articles WHERE slug = $1`, slug)
	a, err := scanArticle(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create は新しい記事を作成する。
// ID が空の場合は UUID を採番する。作成後、公開デフォルトが適用されれば
// publish_at を作成時刻で埋める。
func (r *PgArticleRepository) Create(ctx context.Context, article *model.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO articles (id, slug, title, body, publish_at, unpublish_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		article.ID, article.Slug, article.Title, article.Body,
		article.PublishAt, article.UnpublishAt,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicate
		}
		return err
	}
	if r.policy.ApplyCreationDefault(&article.Window, article.CreatedAt) {
		_, err = r.pool.Exec(ctx,
			`UPDATE articles SET publish_at = $1 WHERE id = $2`,
			article.PublishAt, article.ID)
	}
	return err
}

// Update は slug, title, body, updated_at を更新する。
// 対象が存在しない場合は ErrNotFound を返す。
func (r *PgArticleRepository) Update(ctx context.Context, article *model.Article) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE articles SET slug = $1, title = $2, body = $3, updated_at = NOW()
		 WHERE id = $4`,
		article.Slug, article.Title, article.Body, article.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateWindow は公開期間カラムのみを更新する。
// 対象が存在しない場合は ErrNotFound を返す。
func (r *PgArticleRepository) UpdateWindow(ctx context.Context, id string, w publication.Window) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE articles SET publish_at = $1, unpublish_at = $2, updated_at = NOW()
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

// Delete は記事を物理削除する
func (r *PgArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
