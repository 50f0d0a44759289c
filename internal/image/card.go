package imagepkg

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/youruser/purchasetable/internal/cards"
)

// ArtFallback records an item whose art was replaced by the fallback art.
type ArtFallback struct {
	ItemID string
	Name   string
	Rarity string
	Number string
	Err    error
}

// Presenter draws one item into its cell.
type Presenter struct {
	resolver *Resolver
	logger   *zap.Logger
	// flattenAll flattens transparency for every genre, matching the
	// production output; otherwise only OP and Pokémon art is flattened.
	flattenAll bool
}

func NewPresenter(resolver *Resolver, flattenAll bool, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{resolver: resolver, logger: logger, flattenAll: flattenAll}
}

func (p *Presenter) flattens(genre string) bool {
	return p.flattenAll || genre == cards.GenreOP || genre == cards.GenrePokemon
}

// Present draws it with its card art anchored at (x, y). A non-nil result
// means the fallback art was used.
func (p *Presenter) Present(ctx context.Context, pg *page, it cards.Item, x, y int) *ArtFallback {
	g := pg.geo
	label := cards.LabelFor(it)

	var (
		art      image.Image
		height   int
		fallback *ArtFallback
	)
	src, err := p.resolver.FetchArt(ctx, it.ImageURL)
	if err != nil {
		fallback = &ArtFallback{
			ItemID: string(it.ID),
			Name:   label.Name,
			Rarity: it.Rarity,
			Number: it.Number,
			Err:    err,
		}
		p.logger.Warn("card art unavailable, using fallback art",
			zap.String("item_id", fallback.ItemID),
			zap.String("name", fallback.Name),
			zap.String("rarity", fallback.Rarity),
			zap.String("number", fallback.Number),
			zap.Error(err),
		)
		art = pg.stock.FallbackArt()
		height = g.CardHeight
	} else {
		art = src
		height = FitHeight(src, g.CardWidth, g.CardHeight)
		if height <= 0 {
			height = g.CardHeight
		}
	}

	resized := imaging.Resize(art, g.CardWidth, height, imaging.Lanczos)
	if p.flattens(it.Genre) {
		overlay(pg.canvas, flattenOnWhite(resized), x, y)
	} else {
		overlay(pg.canvas, resized, x, y)
	}

	paste(pg.canvas, pg.captionFrame, x+g.FrameDX, y+g.CardHeight+g.FrameDY)
	if label.NumberFrame {
		paste(pg.canvas, pg.numberFrame, x+g.NumberDX, y+g.CardHeight+g.NumberDY)
	}

	if it.HasBadge() {
		if badge := pg.stock.Badge(); badge != nil {
			side := g.BadgeSize()
			overlay(pg.canvas, imaging.Resize(badge, side, side, imaging.Lanczos), x+g.CardWidth-side-10, y+10)
		}
	}

	// Rows without a name or price only show their art and frames.
	if label.Name == "" || it.Price <= 0 {
		return fallback
	}
	p.drawCaption(pg, label, x, y)
	p.drawNumber(pg, label, x, y)
	return fallback
}

func (p *Presenter) drawCaption(pg *page, label cards.Label, x, y int) {
	g := pg.geo
	ts := pg.ts

	size := ts.Fit(label.Caption, g.NameSize, g.CaptionWidth())
	box := ts.Measure(label.Caption, size)
	ts.Draw(pg.canvas, label.Caption, size, x+floorDiv(g.CardWidth-box.Width, 2), y+g.CardHeight+g.NameDY, pg.pal.caption)

	size = ts.Fit(label.Price, g.PriceSize, g.CardWidth)
	box = ts.Measure(label.Price, size)
	ts.Draw(pg.canvas, label.Price, size, x+floorDiv(g.CardWidth-box.Width, 2), y+g.CardHeight+g.PriceDY, pg.pal.caption)
}

// drawNumber centres the number on the card's right half, then applies the
// format's fine-tuning offsets that move it into the number frame.
func (p *Presenter) drawNumber(pg *page, label cards.Label, x, y int) {
	if label.Number == "" {
		return
	}
	g := pg.geo
	ts := pg.ts

	size := ts.Fit(label.Number, g.NumberSize, g.NumberWidth)
	box := ts.Measure(label.Number, size)
	nx := x + g.CardWidth + floorDiv(g.CardWidth/2-box.Width, 2)
	ny := y + g.CardHeight/2 - box.Height/2
	ts.Draw(pg.canvas, label.Number, size, nx-g.NumberBorder+g.NumberTextDX, ny+g.NumberTextDY, black)
}
