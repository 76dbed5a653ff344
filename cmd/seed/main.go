package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/avdgaag/publishable/internal/fixture"
	"github.com/avdgaag/publishable/internal/logging"
	"github.com/avdgaag/publishable/internal/repository"
	"github.com/joho/godotenv"
)

// seed は fixtures/seed.json の記事とバナーをデータベースへ投入する。
// スラッグが既に存在する記事、名前が既に存在するバナーはスキップするため、
// 繰り返し実行できる。
func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup()

	path := "fixtures/seed.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	articles, banners, err := fixture.Load(path)
	if err != nil {
		logging.Fatal("load fixtures failed", "path", path, "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, repository.DatabaseURL())
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	articleRepo := repository.NewPgArticleRepository(pool)
	bannerRepo := repository.NewPgBannerRepository(pool)

	created, skipped := 0, 0
	for _, a := range articles {
		err := articleRepo.Create(ctx, a)
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			skipped++
			slog.Debug("article already seeded", "slug", a.Slug)
		case err != nil:
			logging.Fatal("seed article failed", "slug", a.Slug, "error", err)
		default:
			created++
			slog.Info("article seeded", "slug", a.Slug, "id", a.ID)
		}
	}

	for _, b := range banners {
		err := bannerRepo.Create(ctx, b)
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			skipped++
			slog.Debug("banner already seeded", "name", b.Name)
		case err != nil:
			logging.Fatal("seed banner failed", "name", b.Name, "error", err)
		default:
			created++
			slog.Info("banner seeded", "name", b.Name, "id", b.ID)
		}
	}

	slog.Info("seed completed", "created", created, "skipped", skipped)
}
