// render: compose purchase table pages from a local item list.
//
//	render -items items.csv -format HORIZONTAL_8 -out ./out [-title ...] [-store ...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/purchasetable/internal/cards"
	"github.com/youruser/purchasetable/internal/config"
	"github.com/youruser/purchasetable/internal/format"
	imagepkg "github.com/youruser/purchasetable/internal/image"
	"github.com/youruser/purchasetable/internal/logging"
	"github.com/youruser/purchasetable/internal/publish"
	"github.com/youruser/purchasetable/internal/table"
	"github.com/youruser/purchasetable/internal/util"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

// run renders every page and returns the first error. It never exits, so
// the page iterator always gets to remove its scratch directory.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	itemsPath := fs.String("items", "", "item list (.csv or .json)")
	formatID := fs.String("format", string(format.Horizontal8), "layout: "+formatList())
	outDir := fs.String("out", "out", "output directory")
	title := fs.String("title", "", "page title")
	storeName := fs.String("store", "", "store name")
	comment := fs.String("comment", "", "footer comment")
	accent := fs.String("color", "", "frame accent color (#rrggbb or name)")
	bgText := fs.String("text-color", "", "title, comment and date color")
	captionText := fs.String("caption-color", "", "card name and price color")
	templateURL := fs.String("template", "", "custom template locator")
	qrText := fs.String("qr", "", "text encoded in a corner QR code")
	timeout := fs.Duration("timeout", 0, "per-fetch timeout (default from FETCH_TIMEOUT)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if *itemsPath == "" {
		fmt.Fprintln(stderr, "render: -items is required")
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	if *timeout > 0 {
		cfg.FetchTimeout = *timeout
	}
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	items, err := cards.LoadItemsFile(*itemsPath)
	if err != nil {
		return err
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
	composer := imagepkg.NewComposer(imagepkg.NewPresenter(resolver, cfg.FlattenAllGenres, logger), family, logger)
	generator := table.NewGenerator(resolver, composer, cfg.ScratchDir, logger)
	publisher := publish.NewLocalPublisher(*outDir, "")

	style := imagepkg.Style{
		Accent:         *accent,
		BackgroundText: *bgText,
		CaptionText:    *captionText,
		TemplateURL:    *templateURL,
		Comment:        *comment,
		Title:          *title,
		StoreName:      *storeName,
		QRText:         *qrText,
	}

	stamp := time.Now().Format("20060102150405")
	written := 0
	var failed error
	for pg, err := range generator.Pages(ctx, items, *formatID, style) {
		if err != nil {
			failed = err
			break
		}
		key := fmt.Sprintf("purchase-table-%s-%02d.jpg", stamp, pg.Number)
		path, err := publisher.Publish(ctx, key, pg.Image)
		if err != nil {
			failed = err
			break
		}
		for _, fb := range pg.Fallbacks {
			fmt.Fprintf(stderr, "page %d: %s (%s %s) used fallback art: %v\n", pg.Number, fb.Name, fb.Rarity, fb.Number, fb.Err)
		}
		fmt.Fprintln(stdout, filepath.Clean(path))
		written++
	}
	if failed != nil {
		return failed
	}
	logger.Info("render finished", zap.Int("pages", written), zap.String("out", *outDir))
	return nil
}

func formatList() string {
	ids := format.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
