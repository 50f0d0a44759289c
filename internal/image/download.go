package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/youruser/purchasetable/internal/format"
	"github.com/youruser/purchasetable/internal/util"
)

var (
	// ErrAssetFetch means a template could not be downloaded.
	ErrAssetFetch = errors.New("asset fetch failed")
	// ErrTemplateDecode means template bytes are not a decodable image.
	ErrTemplateDecode = errors.New("template decode failed")
)

const templateJPEGQuality = 95

// placeholderColor fills the art used when even the fallback art cannot be fetched.
var placeholderColor = color.NRGBA{R: 70, G: 110, B: 170, A: 255}

// AssetConfig locates the stock assets.
type AssetConfig struct {
	TemplateBaseURL string
	FallbackArtURL  string
	BadgeURL        string
}

// Resolver fetches templates, card art, the fallback art and the badge.
// It keeps no cache and may be shared between goroutines; see Stock for
// per-table memoization.
type Resolver struct {
	fetcher util.Fetcher
	cfg     AssetConfig
	logger  *zap.Logger
}

func NewResolver(fetcher util.Fetcher, cfg AssetConfig, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{fetcher: fetcher, cfg: cfg, logger: logger}
}

// TemplateURL is the stock template location for a format.
func (r *Resolver) TemplateURL(spec format.Spec) string {
	base := r.cfg.TemplateBaseURL
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + spec.Template
}

// FetchTemplate returns the template bytes for spec. Stock templates must
// decode as an image. An override is re-encoded as JPEG when it arrives in
// another encoding and stretched to the format's template size.
func (r *Resolver) FetchTemplate(ctx context.Context, spec format.Spec, override string) ([]byte, error) {
	if override == "" {
		loc := r.TemplateURL(spec)
		data, err := r.fetcher.Fetch(ctx, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAssetFetch, loc, err)
		}
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateDecode, loc, err)
		}
		return data, nil
	}

	data, err := r.fetcher.Fetch(ctx, override)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetFetch, override, err)
	}
	_, encoding, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateDecode, override, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateDecode, override, err)
	}

	g := spec.Geometry
	b := img.Bounds()
	if encoding == "jpeg" && b.Dx() == g.TemplateWidth && b.Dy() == g.TemplateHeight {
		return data, nil
	}
	r.logger.Info("normalizing custom template",
		zap.String("encoding", encoding),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
		zap.Int("target_width", g.TemplateWidth),
		zap.Int("target_height", g.TemplateHeight),
	)
	if b.Dx() != g.TemplateWidth || b.Dy() != g.TemplateHeight {
		img = imaging.Resize(img, g.TemplateWidth, g.TemplateHeight, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(templateJPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateFile is a template stored on local disk; every Open decodes a
// fresh canvas.
type TemplateFile string

func (p TemplateFile) Open() (*image.NRGBA, error) {
	img, err := imaging.Open(string(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateDecode, err)
	}
	return imaging.Clone(img), nil
}

// FetchArt downloads and decodes card art.
func (r *Resolver) FetchArt(ctx context.Context, locator string) (image.Image, error) {
	if strings.TrimSpace(locator) == "" {
		return nil, errors.New("empty image url")
	}
	data, err := r.fetcher.Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", locator, err)
	}
	return img, nil
}

// FallbackArt fetches the "no image" card art. When the stock asset is
// unreachable a flat placeholder is returned instead.
func (r *Resolver) FallbackArt(ctx context.Context) image.Image {
	img, err := r.FetchArt(ctx, r.cfg.FallbackArtURL)
	if err != nil {
		r.logger.Warn("fallback art unavailable, using placeholder",
			zap.String("url", r.cfg.FallbackArtURL), zap.Error(err))
		return imaging.New(63, 88, placeholderColor)
	}
	return img
}

// Badge fetches the graded-gem badge, or returns nil when it cannot be loaded.
func (r *Resolver) Badge(ctx context.Context) image.Image {
	img, err := r.FetchArt(ctx, r.cfg.BadgeURL)
	if err != nil {
		r.logger.Warn("badge unavailable", zap.String("url", r.cfg.BadgeURL), zap.Error(err))
		return nil
	}
	return img
}

// Stock memoizes the fallback art and badge for one purchase table. Each
// asset is fetched at most once per Stock, success or not, and a slow
// asset host only stalls the table that owns the Stock.
type Stock struct {
	fallback func() image.Image
	badge    func() image.Image
}

// NewStock returns an empty Stock whose fetches run under ctx.
func (r *Resolver) NewStock(ctx context.Context) *Stock {
	return &Stock{
		fallback: sync.OnceValue(func() image.Image { return r.FallbackArt(ctx) }),
		badge:    sync.OnceValue(func() image.Image { return r.Badge(ctx) }),
	}
}

func (s *Stock) FallbackArt() image.Image { return s.fallback() }

// Badge is nil when the badge could not be loaded.
func (s *Stock) Badge() image.Image { return s.badge() }

// ComputeFitHeight fetches the image at locator and returns the height
// that keeps its aspect ratio at targetWidth, clamped to maxHeight when
// maxHeight > 0. It returns -1 on any failure.
func (r *Resolver) ComputeFitHeight(ctx context.Context, locator string, targetWidth, maxHeight int) int {
	img, err := r.FetchArt(ctx, locator)
	if err != nil {
		r.logger.Debug("fit height unavailable", zap.String("url", locator), zap.Error(err))
		return -1
	}
	return FitHeight(img, targetWidth, maxHeight)
}

// FitHeight is floor(targetWidth / (w/h)), clamped to maxHeight when
// maxHeight > 0; -1 for an empty image.
func FitHeight(img image.Image, targetWidth, maxHeight int) int {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return -1
	}
	aspect := float64(b.Dx()) / float64(b.Dy())
	h := int(float64(targetWidth) / aspect)
	if maxHeight > 0 && h > maxHeight {
		return maxHeight
	}
	return h
}
