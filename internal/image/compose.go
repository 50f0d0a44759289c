package imagepkg

import (
	"context"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/purchasetable/internal/cards"
	"github.com/youruser/purchasetable/internal/format"
)

const dateLabelPrefix = "更新日  "

// Dates on the flyer are always printed in Japan time.
var jst = time.FixedZone("JST", 9*60*60)

// TemplateSource opens a fresh, privately owned template canvas.
type TemplateSource interface {
	Open() (*image.NRGBA, error)
}

// Page is one finished flyer image.
type Page struct {
	// Number is the 1-based page order.
	Number    int
	Image     *image.NRGBA
	Occupied  int
	Fallbacks []ArtFallback
}

// page is the drawing state of one Page while it is being composed.
type page struct {
	canvas       *image.NRGBA
	geo          format.Geometry
	ts           *Typesetter
	pal          palette
	captionFrame *image.NRGBA
	numberFrame  *image.NRGBA
	stock        *Stock
}

// Composer lays out one page worth of items on a template.
type Composer struct {
	presenter *Presenter
	family    *Family
	logger    *zap.Logger
	now       func() time.Time
	stock     *Stock
}

// ComposerOption customises a Composer.
type ComposerOption func(*Composer)

// WithClock overrides the clock used for the date label.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) {
		if now != nil {
			c.now = now
		}
	}
}

func NewComposer(presenter *Presenter, family *Family, logger *zap.Logger, opts ...ComposerOption) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Composer{presenter: presenter, family: family, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithStock returns a copy of c that draws fallback art and badges from
// stock, so every page of one table shares a single fetch of each.
func (c *Composer) WithStock(stock *Stock) *Composer {
	cp := *c
	cp.stock = stock
	return &cp
}

// Compose draws items (at most one page) onto a fresh template canvas.
// Art failures are absorbed; only template and font errors fail the page.
func (c *Composer) Compose(ctx context.Context, spec format.Spec, tpl TemplateSource, items []cards.Item, style Style, number int) (*Page, error) {
	if len(items) > spec.Capacity() {
		return nil, fmt.Errorf("page %d: %d items exceed capacity %d of %s", number, len(items), spec.Capacity(), spec.ID)
	}
	pal, err := style.palette()
	if err != nil {
		return nil, err
	}
	canvas, err := tpl.Open()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", number, err)
	}

	ts := c.family.NewTypesetter()
	defer ts.Close()

	stock := c.stock
	if stock == nil {
		stock = c.presenter.resolver.NewStock(ctx)
	}

	g := spec.Geometry
	pg := &page{
		canvas:       canvas,
		geo:          g,
		ts:           ts,
		pal:          pal,
		captionFrame: captionFrame(g, pal.accent),
		numberFrame:  numberFrame(g, pal.accent),
		stock:        stock,
	}

	out := &Page{Number: number, Image: canvas}
	for i := 0; i < spec.Capacity(); i++ {
		if i >= len(items) {
			// Empty cells stay blank.
			continue
		}
		x, y := spec.CellOrigin(i)
		if fb := c.presenter.Present(ctx, pg, items[i], x, y); fb != nil {
			out.Fallbacks = append(out.Fallbacks, *fb)
		}
		out.Occupied++
	}

	c.decorate(pg, style)
	if err := ts.Err(); err != nil {
		return nil, fmt.Errorf("page %d: %w", number, err)
	}
	c.logger.Debug("page composed",
		zap.String("format", string(spec.ID)),
		zap.Int("page", number),
		zap.Int("occupied", out.Occupied),
		zap.Int("fallbacks", len(out.Fallbacks)),
	)
	return out, nil
}

// decorate draws the footer comment, date label, title and store name.
func (c *Composer) decorate(pg *page, style Style) {
	d := pg.geo.Decorations
	ts := pg.ts
	b := pg.canvas.Bounds()
	w, h := b.Dx(), b.Dy()

	if style.Comment != "" {
		size := ts.Fit(style.Comment, d.CommentSize, d.CommentMaxWidth)
		box := ts.Measure(style.Comment, size)
		ts.Draw(pg.canvas, style.Comment, size, d.CommentX, floorDiv(h-box.Height, 2)+d.CommentDY, pg.pal.background)
	}

	date := dateLabelPrefix + c.now().In(jst).Format("2006/01/02")
	box := ts.Measure(date, d.DateSize)
	ts.Draw(pg.canvas, date, d.DateSize, w-box.Width-d.DateRight, h-box.Height-d.DateBottom, pg.pal.background)

	c.centered(pg, style.Title, d.TitleSize, d.TitleDY)
	c.centered(pg, style.StoreName, d.StoreSize, d.StoreDY)

	if style.QRText != "" {
		if err := drawQR(pg, style.QRText); err != nil {
			c.logger.Warn("qr code skipped", zap.Error(err))
		}
	}
}

// centered draws text centred horizontally, dy pixels from the vertical centre.
func (c *Composer) centered(pg *page, text string, size, dy int) {
	if text == "" {
		return
	}
	b := pg.canvas.Bounds()
	size = pg.ts.Fit(text, size, b.Dx())
	box := pg.ts.Measure(text, size)
	pg.ts.Draw(pg.canvas, text, size, floorDiv(b.Dx()-box.Width, 2), floorDiv(b.Dy()-box.Height, 2)+dy, pg.pal.background)
}
