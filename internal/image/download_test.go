package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/purchasetable/internal/format"
	"github.com/youruser/purchasetable/internal/util"
)

var errNotFound = errors.New("not found")

// assetMap serves canned bytes by locator and counts calls.
type assetMap struct {
	assets map[string][]byte
	calls  atomic.Int32
}

func (m *assetMap) Fetch(_ context.Context, locator string) ([]byte, error) {
	m.calls.Add(1)
	data, ok := m.assets[locator]
	if !ok {
		return nil, errNotFound
	}
	return data, nil
}

func encoded(t *testing.T, w, h int, c color.Color, f imaging.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, c), f))
	return buf.Bytes()
}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	return encoded(t, w, h, c, imaging.PNG)
}

func mustFormat(t *testing.T, id format.ID) format.Spec {
	t.Helper()
	spec, err := format.Resolve(string(id))
	require.NoError(t, err)
	return spec
}

func TestTemplateURLJoinsBase(t *testing.T) {
	spec := mustFormat(t, format.Vertical9)
	r := NewResolver(&assetMap{}, AssetConfig{TemplateBaseURL: "https://cdn.example.com/tpl"}, nil)
	assert.Equal(t, "https://cdn.example.com/tpl/VERTICAL.jpg", r.TemplateURL(spec))

	r = NewResolver(&assetMap{}, AssetConfig{TemplateBaseURL: "file://resources/"}, nil)
	assert.Equal(t, "file://resources/VERTICAL.jpg", r.TemplateURL(spec))
}

func TestFetchStockTemplate(t *testing.T) {
	spec := mustFormat(t, format.Enhanced2)
	stock := encoded(t, 4, 4, color.White, imaging.JPEG)
	fetcher := &assetMap{assets: map[string][]byte{"base/HORIZONTAL2.jpg": stock}}
	r := NewResolver(fetcher, AssetConfig{TemplateBaseURL: "base"}, nil)

	data, err := r.FetchTemplate(context.Background(), spec, "")
	require.NoError(t, err)
	assert.Equal(t, stock, data)
}

func TestFetchTemplateMissing(t *testing.T) {
	spec := mustFormat(t, format.Square6)
	r := NewResolver(&assetMap{}, AssetConfig{TemplateBaseURL: "base"}, nil)

	_, err := r.FetchTemplate(context.Background(), spec, "")
	assert.ErrorIs(t, err, ErrAssetFetch)

	_, err = r.FetchTemplate(context.Background(), spec, "https://example.com/custom.png")
	assert.ErrorIs(t, err, ErrAssetFetch)
}

func TestFetchTemplateOverrideIsNormalized(t *testing.T) {
	spec := mustFormat(t, format.Monitor3)
	fetcher := &assetMap{assets: map[string][]byte{
		"custom.png": pngBytes(t, 192, 108, color.NRGBA{R: 10, G: 200, B: 10, A: 255}),
	}}
	r := NewResolver(fetcher, AssetConfig{}, nil)

	data, err := r.FetchTemplate(context.Background(), spec, "custom.png")
	require.NoError(t, err)
	cfg, encoding, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", encoding)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
}

func TestFetchTemplateOverrideAlreadyJPEGKeepsBytes(t *testing.T) {
	spec := mustFormat(t, format.Enhanced2)
	jpeg := encoded(t, 1477, 1108, color.White, imaging.JPEG)
	r := NewResolver(&assetMap{assets: map[string][]byte{"custom.jpg": jpeg}}, AssetConfig{}, nil)

	data, err := r.FetchTemplate(context.Background(), spec, "custom.jpg")
	require.NoError(t, err)
	assert.Equal(t, jpeg, data)
}

func TestFetchTemplateOverrideNotAnImage(t *testing.T) {
	spec := mustFormat(t, format.Monitor3)
	r := NewResolver(&assetMap{assets: map[string][]byte{"custom": []byte("<html>")}}, AssetConfig{}, nil)

	_, err := r.FetchTemplate(context.Background(), spec, "custom")
	assert.ErrorIs(t, err, ErrTemplateDecode)
}

func TestTemplateFileOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tpl.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 30, 20, color.White), 0o644))

	canvas, err := TemplateFile(path).Open()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), canvas.Bounds())

	// Each Open yields an independent canvas.
	other, err := TemplateFile(path).Open()
	require.NoError(t, err)
	canvas.Pix[0] = 0
	assert.Equal(t, uint8(255), other.Pix[0])

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	_, err = TemplateFile(path).Open()
	assert.ErrorIs(t, err, ErrTemplateDecode)
}

func TestFitHeight(t *testing.T) {
	assert.Equal(t, 907, FitHeight(imaging.New(63, 88, color.White), 650, 910))
	assert.Equal(t, 910, FitHeight(imaging.New(10, 20, color.White), 650, 910))
	assert.Equal(t, 1300, FitHeight(imaging.New(10, 20, color.White), 650, 0))
	assert.Equal(t, 325, FitHeight(imaging.New(20, 10, color.White), 650, 910))
}

func TestComputeFitHeight(t *testing.T) {
	fetcher := &assetMap{assets: map[string][]byte{
		"art.png":  pngBytes(t, 63, 88, color.White),
		"junk.png": []byte("nope"),
	}}
	r := NewResolver(fetcher, AssetConfig{}, nil)
	ctx := context.Background()

	assert.Equal(t, 907, r.ComputeFitHeight(ctx, "art.png", 650, 910))
	assert.Equal(t, -1, r.ComputeFitHeight(ctx, "missing.png", 650, 910))
	assert.Equal(t, -1, r.ComputeFitHeight(ctx, "junk.png", 650, 910))
	assert.Equal(t, -1, r.ComputeFitHeight(ctx, "", 650, 910))
}

func TestStockFetchesFallbackArtOnce(t *testing.T) {
	fetcher := &assetMap{assets: map[string][]byte{"noimage.png": pngBytes(t, 5, 7, color.White)}}
	r := NewResolver(fetcher, AssetConfig{FallbackArtURL: "noimage.png"}, nil)
	stock := r.NewStock(context.Background())

	first := stock.FallbackArt()
	second := stock.FallbackArt()
	assert.Equal(t, image.Rect(0, 0, 5, 7), first.Bounds())
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), fetcher.calls.Load())

	// A new table fetches again.
	r.NewStock(context.Background()).FallbackArt()
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestStockPlaceholderIsFetchedOncePerTable(t *testing.T) {
	fetcher := &assetMap{}
	r := NewResolver(fetcher, AssetConfig{FallbackArtURL: "gone.png"}, nil)
	stock := r.NewStock(context.Background())

	for range 4 {
		img := stock.FallbackArt()
		require.NotNil(t, img)
		assert.Equal(t, image.Rect(0, 0, 63, 88), img.Bounds())
	}
	assert.Equal(t, int32(1), fetcher.calls.Load())

	assert.Equal(t, image.Rect(0, 0, 63, 88), r.FallbackArt(context.Background()).Bounds())
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestStockBadgeUnavailable(t *testing.T) {
	fetcher := &assetMap{}
	stock := NewResolver(fetcher, AssetConfig{BadgeURL: "badge.png"}, nil).NewStock(context.Background())
	assert.Nil(t, stock.Badge())
	assert.Nil(t, stock.Badge())
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

// A stalled fallback fetch for one table must not hold up another table's
// assets.
func TestStockSlowFallbackDoesNotBlockOtherTables(t *testing.T) {
	badge := pngBytes(t, 3, 3, color.White)
	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	fetcher := util.FetcherFunc(func(ctx context.Context, locator string) ([]byte, error) {
		if locator == "noimage.png" {
			close(entered)
			select {
			case <-release:
			case <-ctx.Done():
			}
			return nil, errNotFound
		}
		return badge, nil
	})
	r := NewResolver(fetcher, AssetConfig{FallbackArtURL: "noimage.png", BadgeURL: "badge.png"}, nil)

	slow := r.NewStock(context.Background())
	go slow.FallbackArt()
	<-entered

	done := make(chan image.Image, 1)
	go func() { done <- r.NewStock(context.Background()).Badge() }()
	select {
	case img := <-done:
		require.NotNil(t, img)
		assert.Equal(t, image.Rect(0, 0, 3, 3), img.Bounds())
	case <-time.After(2 * time.Second):
		t.Fatal("badge fetch blocked behind another table's fallback fetch")
	}
}

func TestFetchStockTemplateNotAnImage(t *testing.T) {
	spec := mustFormat(t, format.Horizontal8)
	fetcher := &assetMap{assets: map[string][]byte{"base/HORIZONTAL.jpg": []byte("<html>503</html>")}}
	r := NewResolver(fetcher, AssetConfig{TemplateBaseURL: "base"}, nil)

	_, err := r.FetchTemplate(context.Background(), spec, "")
	assert.ErrorIs(t, err, ErrTemplateDecode)
	assert.NotErrorIs(t, err, ErrAssetFetch)
}

func TestResolverWithFileFetcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MONITOR.jpg"), encoded(t, 8, 8, color.White, imaging.JPEG), 0o644))
	r := NewResolver(util.NewContentFetcher(0), AssetConfig{TemplateBaseURL: "file://" + filepath.ToSlash(dir)}, nil)

	data, err := r.FetchTemplate(context.Background(), mustFormat(t, format.Monitor12), "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
