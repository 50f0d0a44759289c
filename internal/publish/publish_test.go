package publish

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^pos/store/42/purchase-table/purchase-table-20250331160500-[0-9a-z]{26}\.jpg$`)

func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 31, 16, 5, 0, 0, time.UTC)
	a := ObjectKey("42", now)
	b := ObjectKey(" 42 ", now)
	assert.Regexp(t, keyPattern, a)
	assert.Regexp(t, keyPattern, b)
	assert.NotEqual(t, a, b)
}

func TestLocalPublisherWritesJPEG(t *testing.T) {
	dir := t.TempDir()
	p := NewLocalPublisher(dir, "")
	key := "pos/store/1/purchase-table/page.jpg"

	url, err := p.Publish(context.Background(), key, imaging.New(40, 30, color.White))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pos", "store", "1", "purchase-table", "page.jpg"), url)

	f, err := os.Open(url)
	require.NoError(t, err)
	defer f.Close()
	cfg, encoding, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", encoding)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestLocalPublisherBaseURL(t *testing.T) {
	p := NewLocalPublisher(t.TempDir(), "http://localhost:8080/files/")
	url, err := p.Publish(context.Background(), "a/b.jpg", imaging.New(2, 2, color.Black))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/a/b.jpg", url)
}

func TestLocalPublisherFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "pos")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not dir"), 0o644))

	_, err := NewLocalPublisher(dir, "").Publish(context.Background(), "pos/x.jpg", imaging.New(2, 2, color.Black))
	assert.ErrorIs(t, err, ErrPublish)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewLocalPublisher(dir, "").Publish(ctx, "ok.jpg", imaging.New(2, 2, color.Black))
	assert.ErrorIs(t, err, ErrPublish)
}

func TestNewGCSPublisherValidation(t *testing.T) {
	_, err := NewGCSPublisher(nil, "bucket", "")
	assert.Error(t, err)

	_, err = NewGCSPublisher(&gcs.Client{}, " ", "")
	assert.Error(t, err)
}

func TestGCSPublisherURL(t *testing.T) {
	p, err := NewGCSPublisher(&gcs.Client{}, "pos-assets", "")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/pos-assets/pos/store/1/x.jpg", p.URL("pos/store/1/x.jpg"))

	p, err = NewGCSPublisher(&gcs.Client{}, "pos-assets", "https://cdn.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/pos/store/1/x.jpg", p.URL("pos/store/1/x.jpg"))
}
