package publish

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/youruser/purchasetable/internal/util"
)

// LocalPublisher writes page images below a directory. With a base URL
// the returned address is base/key, otherwise the file path.
type LocalPublisher struct {
	dir     string
	baseURL string
}

func NewLocalPublisher(dir, baseURL string) *LocalPublisher {
	return &LocalPublisher{dir: dir, baseURL: baseURL}
}

func (p *LocalPublisher) Publish(ctx context.Context, key string, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}
	path := filepath.Join(p.dir, filepath.FromSlash(key))
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}
	if err := encodeJPEG(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: encode %s: %v", ErrPublish, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}
	if p.baseURL != "" {
		return joinURL(p.baseURL, key), nil
	}
	return path, nil
}
