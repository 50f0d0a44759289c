package table

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/purchasetable/internal/cards"
	"github.com/youruser/purchasetable/internal/format"
	imagepkg "github.com/youruser/purchasetable/internal/image"
	"github.com/youruser/purchasetable/internal/util"
)

// Generator turns an item list into the ordered pages of one purchase table.
// It holds no per-call state and may be shared between goroutines.
type Generator struct {
	resolver   *imagepkg.Resolver
	composer   *imagepkg.Composer
	scratchDir string
	logger     *zap.Logger
}

func NewGenerator(resolver *imagepkg.Resolver, composer *imagepkg.Composer, scratchDir string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{resolver: resolver, composer: composer, scratchDir: scratchDir, logger: logger}
}

// Pages yields one page per capacity-sized chunk of items, in order. The
// template is fetched once per call into a private scratch directory which
// is removed when iteration ends, however it ends. After an error nothing
// more is yielded.
func (g *Generator) Pages(ctx context.Context, items []cards.Item, formatID string, style imagepkg.Style) iter.Seq2[*imagepkg.Page, error] {
	return func(yield func(*imagepkg.Page, error) bool) {
		spec, err := format.Resolve(formatID)
		if err != nil {
			yield(nil, err)
			return
		}
		if err := style.Validate(); err != nil {
			yield(nil, err)
			return
		}

		scratch, err := util.NewScratch(g.scratchDir, "purchase-table-*")
		if err != nil {
			yield(nil, err)
			return
		}
		defer func() {
			dir := scratch.Dir()
			if err := scratch.Close(); err != nil {
				g.logger.Warn("scratch cleanup failed", zap.String("dir", dir), zap.Error(err))
			}
		}()

		data, err := g.resolver.FetchTemplate(ctx, spec, style.TemplateURL)
		if err != nil {
			yield(nil, err)
			return
		}
		path, err := scratch.WriteFile(spec.Template, data)
		if err != nil {
			yield(nil, fmt.Errorf("store template: %w", err))
			return
		}
		tpl := imagepkg.TemplateFile(path)
		composer := g.composer.WithStock(g.resolver.NewStock(ctx))

		capacity := spec.Capacity()
		total := PageCount(len(items), capacity)
		g.logger.Info("generating purchase table",
			zap.String("format", string(spec.ID)),
			zap.Int("items", len(items)),
			zap.Int("pages", total),
		)
		for n := 0; n < total; n++ {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			start := n * capacity
			end := min(start+capacity, len(items))
			pg, err := composer.Compose(ctx, spec, tpl, items[start:end], style, n+1)
			if err != nil {
				yield(nil, err)
				return
			}
			g.logger.Info("page done", zap.Int("page", n+1), zap.Int("of", total))
			if !yield(pg, nil) {
				return
			}
		}
	}
}

// Generate collects every page. It returns no pages at all when any page
// fails.
func (g *Generator) Generate(ctx context.Context, items []cards.Item, formatID string, style imagepkg.Style) ([]*imagepkg.Page, error) {
	started := time.Now()
	var pages []*imagepkg.Page
	for pg, err := range g.Pages(ctx, items, formatID, style) {
		if err != nil {
			return nil, err
		}
		pages = append(pages, pg)
	}
	g.logger.Info("purchase table generated",
		zap.String("format", formatID),
		zap.Int("pages", len(pages)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return pages, nil
}

// PageCount is ceil(items / capacity).
func PageCount(items, capacity int) int {
	if items <= 0 || capacity <= 0 {
		return 0
	}
	return (items + capacity - 1) / capacity
}
