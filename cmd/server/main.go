package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/purchasetable/internal/api"
	"github.com/youruser/purchasetable/internal/config"
	imagepkg "github.com/youruser/purchasetable/internal/image"
	"github.com/youruser/purchasetable/internal/logging"
	"github.com/youruser/purchasetable/internal/publish"
	"github.com/youruser/purchasetable/internal/table"
	"github.com/youruser/purchasetable/internal/util"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.BotToken == "" {
		logger.Warn("BOT_TOKEN is empty, every request will be rejected")
	}

	family, err := imagepkg.LoadFamily(cfg.FontPath)
	if err != nil {
		return err
	}
	if family.Embedded() {
		logger.Warn("FONT_PATH is empty, the embedded font has no CJK glyphs and Japanese text will not render")
	}
	resolver := imagepkg.NewResolver(util.NewContentFetcher(cfg.FetchTimeout), imagepkg.AssetConfig{
		TemplateBaseURL: cfg.TemplateBaseURL,
		FallbackArtURL:  cfg.FallbackArtURL,
		BadgeURL:        cfg.BadgeURL,
	}, logger)
	presenter := imagepkg.NewPresenter(resolver, cfg.FlattenAllGenres, logger)
	composer := imagepkg.NewComposer(presenter, family, logger)
	generator := table.NewGenerator(resolver, composer, cfg.ScratchDir, logger)

	publisher, closePublisher, err := newPublisher(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePublisher()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	api.RegisterRoutes(r, api.NewHandlers(generator, publisher, logger), cfg.BotToken)

	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("font", family.Name()),
		zap.String("storage", cfg.StorageBackend),
		zap.Bool("flatten_all_genres", cfg.FlattenAllGenres),
	)
	if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newPublisher(ctx context.Context, cfg config.Config) (publish.Publisher, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendGCS:
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("storage client: %w", err)
		}
		p, err := publish.NewGCSPublisher(client, cfg.StorageBucket, cfg.StoragePublicBaseURL)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return p, func() { _ = client.Close() }, nil
	default:
		return publish.NewLocalPublisher(cfg.StorageLocalDir, cfg.StoragePublicBaseURL), func() {}, nil
	}
}
